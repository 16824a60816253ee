package lmp

func (t NodeType) String() string {
	switch t {
	case TextNode:
		return "TextNode"
	case ElementNode:
		return "ElementNode"
	}
	return "NodeType(unknown)"
}

// IsText reports whether n is a text run.
func IsText(n Node) bool {
	return n != nil && n.Type() == TextNode
}

// IsElement reports whether n is an element.
func IsElement(n Node) bool {
	return n != nil && n.Type() == ElementNode
}
