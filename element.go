package lmp

func NewElement(name, text string) *Element {
	return &Element{
		name: name,
		text: text,
	}
}

func newElementBytes(name, text []byte) *Element {
	return NewElement(string(name), string(text))
}

func (*Element) lmpNode() {}

func (*Element) Type() NodeType {
	return ElementNode
}

func (n *Element) Name() string {
	return n.name
}

// Text returns the character data between the opening and closing
// tags. It is empty for self-closed elements.
func (n *Element) Text() string {
	return n.text
}

// Attributes returns a copy of the element's attributes. The scanner
// does not parse attributes, so this is empty for every parsed element.
func (n *Element) Attributes() map[string]string {
	attrs := make(map[string]string, len(n.attributes))
	for k, v := range n.attributes {
		attrs[k] = v
	}
	return attrs
}

// IsSelfClosed reports whether the element has no body text, i.e. it
// would be serialized as <name/>.
func (n *Element) IsSelfClosed() bool {
	return n.text == ""
}
