package sax

// Context is the opaque value handed to every callback. The tree
// builder receives the *lmp.Document being built.
type Context interface{}

// Handler receives the events produced by the scanner. Returning an
// error from any callback stops the scan.
type Handler interface {
	StartDocument(ctx Context) error
	EndDocument(ctx Context) error
	Characters(ctx Context, content []byte) error
	Element(ctx Context, elem ParsedElement) error
	Recover(ctx Context, r Recovery) error
}

// ParsedElement is a fully closed element. The byte slices are only
// valid for the duration of the callback.
type ParsedElement interface {
	Name() []byte
	Text() []byte
}

// RecoveryKind identifies which malformed construct the scanner
// recovered from.
type RecoveryKind int

const (
	// MalformedName: a byte that cannot appear in a tag name. The byte
	// is dropped.
	MalformedName RecoveryKind = iota + 1
	// MalformedSelfClose: "/" inside a tag name not followed by ">".
	MalformedSelfClose
	// MalformedClose: "<" inside an element body not followed by "/".
	MalformedClose
	// MismatchedClose: the closing tag name differs from the opening one.
	MismatchedClose
	// Unterminated: input ended inside a tag or element body.
	Unterminated
)

// Recovery describes a single recovery. Offset is the byte offset of
// Char in the input. For Unterminated, Offset is the input length and
// Char is 0.
type Recovery struct {
	Kind   RecoveryKind
	Offset int
	Char   byte
}

type StartDocumentFunc func(ctx Context) error
type EndDocumentFunc func(ctx Context) error
type CharactersFunc func(ctx Context, content []byte) error
type ElementFunc func(ctx Context, elem ParsedElement) error
type RecoverFunc func(ctx Context, r Recovery) error

// SAX2 is a Handler made of optional callbacks. Unset callbacks are
// no-ops.
type SAX2 struct {
	StartDocumentHandler StartDocumentFunc
	EndDocumentHandler   EndDocumentFunc
	CharactersHandler    CharactersFunc
	ElementHandler       ElementFunc
	RecoverHandler       RecoverFunc
}
