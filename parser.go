package lmp

import (
	"context"

	"github.com/lestrrat-go/lmp/internal/debug"
	"github.com/lestrrat-go/lmp/sax"
	"github.com/pkg/errors"
)

var defaultTreeBuilder = NewTreeBuilder()

// Parse scans data and returns the resulting document.
//
// Malformed markup never makes Parse fail: it is recovered from and
// either survives as plain text or is dropped. The error is always nil
// unless a handler given through WithSAXHandler returns one.
func Parse(ctx context.Context, data []byte, options ...ParseOption) (*Document, error) {
	return NewParser(options...).Parse(ctx, data)
}

// ParseString is Parse for string input.
func ParseString(ctx context.Context, s string, options ...ParseOption) (*Document, error) {
	return NewParser(options...).Parse(ctx, []byte(s))
}

func NewParser(options ...ParseOption) *Parser {
	p := &Parser{
		sax: defaultTreeBuilder,
	}
	for _, option := range options {
		switch option.Ident() {
		case identSAXHandler{}:
			if h, ok := option.Value().(sax.Handler); ok && h != nil {
				p.sax = h
			}
		case identHighBitNames{}:
			p.highBitNames = option.Value().(bool)
		}
	}
	return p
}

// Parse scans data. A Parser holds no per-call state and may be used
// from multiple goroutines at once.
func (p *Parser) Parse(ctx context.Context, data []byte) (*Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// every call owns its scan context; nothing is shared between calls
	sctx := &scanCtx{}
	sctx.init(ctx, p)
	defer sctx.release()

	if debug.Enabled {
		debug.Printf("START parse (%d bytes)", len(data))
		defer debug.Printf("END   parse")
	}

	if err := sctx.parseDocument(data); err != nil {
		return nil, errors.Wrap(err, `failed to parse document`)
	}

	return sctx.doc, nil
}
