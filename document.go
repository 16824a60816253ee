package lmp

import (
	"iter"

	"github.com/pkg/errors"
)

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) NodeCount() int {
	return len(d.nodes)
}

// NodeAt returns the node at index i. Requesting an index outside of
// [0, NodeCount()) is a programming error and yields ErrIndexOutOfRange.
func (d *Document) NodeAt(i int) (Node, error) {
	if i < 0 || i >= len(d.nodes) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, `index %d (node count %d)`, i, len(d.nodes))
	}
	return d.nodes[i], nil
}

// PushBack appends n to the end of the document.
func (d *Document) PushBack(n Node) error {
	if n == nil {
		return ErrNilNode
	}
	d.nodes = append(d.nodes, n)
	return nil
}

// appendText adds a text run, extending the last node instead when it
// is also text. Recovered markup can produce several runs in a row.
func (d *Document) appendText(b []byte) {
	if l := len(d.nodes); l > 0 {
		if last, ok := d.nodes[l-1].(*Text); ok {
			d.nodes[l-1] = NewText(last.content + string(b))
			return
		}
	}
	d.nodes = append(d.nodes, newTextBytes(b))
}

// Nodes iterates over the nodes in document order.
func (d *Document) Nodes() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for i, n := range d.nodes {
			if !yield(i, n) {
				break
			}
		}
	}
}
