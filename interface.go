package lmp

import (
	"context"
	"errors"

	"github.com/lestrrat-go/lmp/sax"
)

var (
	ErrIndexOutOfRange = errors.New("node index out of range")
	ErrNilNode         = errors.New("nil node")
)

type NodeType int

const (
	TextNode NodeType = iota + 1
	ElementNode
)

// Node is one unit of parsed content. The only implementations are
// *Text and *Element.
type Node interface {
	Type() NodeType
	Name() string
	Text() string
	Attributes() map[string]string

	// seals the interface
	lmpNode()
}

type Text struct {
	content string
}

type Element struct {
	name       string
	text       string
	attributes map[string]string
}

// Document is an ordered, append-only list of nodes.
type Document struct {
	nodes []Node
}

type Parser struct {
	sax          sax.Handler
	highBitNames bool
}

type scanState int

const (
	stText scanState = iota
	stTagName
	stSelfCloseWait
	stElementOpen
	stCloseSeqWait
	stCloseName
)

type charClass int

const (
	clsOther charClass = iota
	clsName
	clsOpen
	clsClose
	clsSlash
)

// scanAction is the side effect a transition performs on the scan
// context. The buffer operations are:
//
//	actBuffer:       raw += c
//	actStartTag:     flush pending raw text, raw = "<"
//	actName:         raw += c, name += c
//	actBody:         raw += c, text += c
//	actCheck:        check += c
//	actEmit:         emit the self-closed element, clear raw
//	actCloseTag:     emit the element if check == name, otherwise raw += c
//	actBadName:      discard the element, c is dropped
//	actBadSelfClose: raw += c, discard the element
//	actBadClose:     raw += c, discard the element
type scanAction int

const (
	actNone scanAction = iota
	actBuffer
	actStartTag
	actName
	actBody
	actCheck
	actEmit
	actCloseTag
	actBadName
	actBadSelfClose
	actBadClose
)

// scanCtx is the working state of a single Parse call
type scanCtx struct {
	context.Context
	state    scanState
	raw      []byte
	name     []byte
	text     []byte
	check    []byte
	offset   int
	highBit  bool
	sax      sax.Handler
	userData interface{}
	doc      *Document
}
