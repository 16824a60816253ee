package lmp

import (
	"github.com/lestrrat-go/lmp/internal/debug"
	"github.com/lestrrat-go/lmp/sax"
	"github.com/pkg/errors"
)

// TreeBuilder is the default sax.Handler. It appends every text run and
// element it receives to the *Document passed as the callback context,
// joining adjacent text runs into a single node.
// It holds no state, so a single instance may serve concurrent parses.
type TreeBuilder struct{}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

func documentFromContext(ctxif sax.Context) (*Document, error) {
	doc, ok := ctxif.(*Document)
	if !ok || doc == nil {
		return nil, errors.Errorf(`expected *lmp.Document as handler context, got %T`, ctxif)
	}
	return doc, nil
}

func (t *TreeBuilder) StartDocument(ctxif sax.Context) error {
	_, err := documentFromContext(ctxif)
	return err
}

func (t *TreeBuilder) EndDocument(ctxif sax.Context) error {
	if debug.Enabled {
		if doc, err := documentFromContext(ctxif); err == nil {
			debug.Printf("tree.EndDocument: %d nodes", doc.NodeCount())
		}
	}
	return nil
}

func (t *TreeBuilder) Characters(ctxif sax.Context, content []byte) error {
	doc, err := documentFromContext(ctxif)
	if err != nil {
		return err
	}
	doc.appendText(content)
	return nil
}

func (t *TreeBuilder) Element(ctxif sax.Context, elem sax.ParsedElement) error {
	doc, err := documentFromContext(ctxif)
	if err != nil {
		return err
	}
	return doc.PushBack(newElementBytes(elem.Name(), elem.Text()))
}

// Recover is a no-op: recovered input either survives as text or is
// dropped by the scanner itself.
func (t *TreeBuilder) Recover(sax.Context, sax.Recovery) error {
	return nil
}
