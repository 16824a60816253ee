package lmp

func NewText(content string) *Text {
	return &Text{content: content}
}

func newTextBytes(b []byte) *Text {
	return &Text{content: string(b)}
}

func (*Text) lmpNode() {}

func (*Text) Type() NodeType {
	return TextNode
}

// Name is always empty for text nodes
func (*Text) Name() string {
	return ""
}

func (n *Text) Text() string {
	return n.content
}

// Attributes is always empty for text nodes
func (*Text) Attributes() map[string]string {
	return map[string]string{}
}
