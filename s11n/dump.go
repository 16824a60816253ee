// Package s11n writes parsed documents back out.
package s11n

import (
	"fmt"
	"io"

	"github.com/lestrrat-go/lmp"
	"github.com/pkg/errors"
)

// Dumper serializes a document back into markup. Text runs are written
// verbatim, elements as <name/> when they have no text and as
// <name>text</name> otherwise. Documents produced from well-formed
// input are reproduced byte for byte.
type Dumper struct{}

func (d *Dumper) DumpDoc(out io.Writer, doc *lmp.Document) error {
	for i, n := range doc.Nodes() {
		if err := d.DumpNode(out, n); err != nil {
			return errors.Wrapf(err, `failed to dump node %d`, i)
		}
	}
	return nil
}

func (d *Dumper) DumpNode(out io.Writer, n lmp.Node) error {
	switch n := n.(type) {
	case *lmp.Text:
		_, err := io.WriteString(out, n.Text())
		return err
	case *lmp.Element:
		return d.dumpElement(out, n)
	}
	return errors.Errorf(`unknown node type %T`, n)
}

func (d *Dumper) dumpElement(out io.Writer, n *lmp.Element) error {
	if n.IsSelfClosed() {
		_, err := io.WriteString(out, "<"+n.Name()+"/>")
		return err
	}

	if _, err := io.WriteString(out, "<"+n.Name()+">"); err != nil {
		return err
	}
	if _, err := io.WriteString(out, n.Text()); err != nil {
		return err
	}
	_, err := io.WriteString(out, "</"+n.Name()+">")
	return err
}

const listHeader = "=---------------- dump doc ----------------="

// Lister writes a human readable listing of every node:
//
//	=---------------- dump doc ----------------=
//	node count = 2
//	[node 0 | name = | text = aaa]
//	[node 1 | name = bbb| text = ]
type Lister struct{}

func (l *Lister) ListDoc(out io.Writer, doc *lmp.Document) error {
	if _, err := fmt.Fprintln(out, listHeader); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "node count = %d\n", doc.NodeCount()); err != nil {
		return err
	}
	for i, n := range doc.Nodes() {
		if _, err := fmt.Fprintf(out, "[node %d | name = %s| text = %s]\n", i, n.Name(), n.Text()); err != nil {
			return err
		}
	}
	return nil
}
