package lmp

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/lestrrat-go/lmp/internal/debug"
	"github.com/lestrrat-go/lmp/internal/pool"
	"github.com/lestrrat-go/lmp/sax"
)

func (s scanState) String() string {
	switch s {
	case stText:
		return "Text"
	case stTagName:
		return "TagName"
	case stSelfCloseWait:
		return "SelfCloseWait"
	case stElementOpen:
		return "ElementOpen"
	case stCloseSeqWait:
		return "CloseSeqWait"
	case stCloseName:
		return "CloseName"
	}
	return "scanState(unknown)"
}

func isNameChar(c byte, highBit bool) bool {
	if c > 0x7f {
		return highBit
	}
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '-' ||
		c == '_'
}

func classify(c byte, highBit bool) charClass {
	switch c {
	case '<':
		return clsOpen
	case '>':
		return clsClose
	case '/':
		return clsSlash
	}
	if isNameChar(c, highBit) {
		return clsName
	}
	return clsOther
}

// transition is the complete transition table of the scanner. It is
// pure: all buffer manipulation happens in scanCtx.apply.
func transition(s scanState, cls charClass) (scanState, scanAction) {
	switch s {
	case stText:
		if cls == clsOpen {
			return stTagName, actStartTag
		}
		return stText, actBuffer
	case stTagName:
		switch cls {
		case clsName:
			return stTagName, actName
		case clsSlash:
			return stSelfCloseWait, actNone
		case clsClose:
			return stElementOpen, actNone
		}
		return stText, actBadName
	case stSelfCloseWait:
		if cls == clsClose {
			return stText, actEmit
		}
		return stText, actBadSelfClose
	case stElementOpen:
		// there is no nesting: any '<' starts a closing tag
		if cls == clsOpen {
			return stCloseSeqWait, actBuffer
		}
		return stElementOpen, actBody
	case stCloseSeqWait:
		if cls == clsSlash {
			return stCloseName, actNone
		}
		return stText, actBadClose
	case stCloseName:
		switch cls {
		case clsName:
			return stCloseName, actCheck
		case clsClose:
			return stText, actCloseTag
		}
		// anything else before '>' is ignored
		return stCloseName, actNone
	}
	return s, actNone
}

// scanElement exposes the in-progress element to sax handlers
type scanElement struct {
	name []byte
	text []byte
}

func (e scanElement) Name() []byte {
	return e.name
}

func (e scanElement) Text() []byte {
	return e.text
}

func (ctx *scanCtx) init(c context.Context, p *Parser) {
	bs := pool.ByteSlice()
	ctx.Context = c
	ctx.state = stText
	ctx.raw = bs.Get()
	ctx.name = bs.Get()
	ctx.text = bs.Get()
	ctx.check = bs.Get()
	ctx.offset = 0
	ctx.highBit = p.highBitNames
	ctx.sax = p.sax
	ctx.doc = NewDocument()
	ctx.userData = ctx.doc
}

func (ctx *scanCtx) release() {
	bs := pool.ByteSlice()
	for _, b := range [][]byte{ctx.raw, ctx.name, ctx.text, ctx.check} {
		bs.Put(b)
	}
	ctx.raw = nil
	ctx.name = nil
	ctx.text = nil
	ctx.check = nil
	ctx.sax = nil
	ctx.userData = nil
	ctx.Context = nil
}

func (ctx *scanCtx) parseDocument(data []byte) error {
	if err := ctx.sax.StartDocument(ctx.userData); err != nil {
		return err
	}

	for i, c := range data {
		ctx.offset = i
		if err := ctx.step(c); err != nil {
			return err
		}
	}
	ctx.offset = len(data)

	if err := ctx.finish(); err != nil {
		return err
	}
	return ctx.sax.EndDocument(ctx.userData)
}

func (ctx *scanCtx) step(c byte) error {
	next, act := transition(ctx.state, classify(c, ctx.highBit))
	if debug.Enabled {
		debug.Printf("%4d %q: %s -> %s", ctx.offset, c, ctx.state, next)
	}

	if err := ctx.apply(act, c); err != nil {
		return err
	}

	if next != ctx.state {
		ctx.enter(next)
	}
	return nil
}

// enter runs the entry action of s
func (ctx *scanCtx) enter(s scanState) {
	switch s {
	case stTagName:
		ctx.discardElement()
	case stCloseName:
		ctx.check = ctx.check[:0]
	}
	ctx.state = s
}

func (ctx *scanCtx) apply(act scanAction, c byte) error {
	switch act {
	case actNone:
	case actBuffer:
		ctx.raw = append(ctx.raw, c)
	case actStartTag:
		if err := ctx.flushText(); err != nil {
			return err
		}
		ctx.raw = append(ctx.raw, c)
	case actName:
		ctx.raw = append(ctx.raw, c)
		ctx.name = append(ctx.name, c)
	case actBody:
		ctx.raw = append(ctx.raw, c)
		ctx.text = append(ctx.text, c)
	case actCheck:
		ctx.check = append(ctx.check, c)
	case actEmit:
		return ctx.emitElement()
	case actCloseTag:
		if bytes.Equal(ctx.check, ctx.name) {
			return ctx.emitElement()
		}
		ctx.raw = append(ctx.raw, c)
		ctx.discardElement()
		return ctx.recover(sax.MismatchedClose, c)
	case actBadName:
		// the offending byte is not kept anywhere
		ctx.discardElement()
		return ctx.recover(sax.MalformedName, c)
	case actBadSelfClose:
		ctx.raw = append(ctx.raw, c)
		ctx.discardElement()
		return ctx.recover(sax.MalformedSelfClose, c)
	case actBadClose:
		ctx.raw = append(ctx.raw, c)
		ctx.discardElement()
		return ctx.recover(sax.MalformedClose, c)
	}
	return nil
}

// finish handles end of input. Only pending text is flushed; a
// partially scanned tag or element is lost.
func (ctx *scanCtx) finish() error {
	if ctx.state == stText {
		return ctx.flushText()
	}

	ctx.discardElement()
	ctx.raw = ctx.raw[:0]
	return ctx.recover(sax.Unterminated, 0)
}

func (ctx *scanCtx) flushText() error {
	if len(ctx.raw) == 0 {
		return nil
	}
	if err := ctx.sax.Characters(ctx.userData, ctx.raw); err != nil {
		return err
	}
	ctx.raw = ctx.raw[:0]
	return nil
}

func (ctx *scanCtx) emitElement() error {
	elem := scanElement{
		name: ctx.name,
		text: ctx.text,
	}
	if err := ctx.sax.Element(ctx.userData, elem); err != nil {
		return err
	}
	ctx.raw = ctx.raw[:0]
	ctx.discardElement()
	return nil
}

func (ctx *scanCtx) discardElement() {
	ctx.name = ctx.name[:0]
	ctx.text = ctx.text[:0]
}

func (ctx *scanCtx) recover(kind sax.RecoveryKind, c byte) error {
	TraceEvent(ctx, "recovered from malformed markup",
		slog.String("kind", kind.String()),
		slog.Int("offset", ctx.offset),
		slog.String("char", string([]byte{c})),
		slog.String("state", ctx.state.String()),
	)

	return ctx.sax.Recover(ctx.userData, sax.Recovery{
		Kind:   kind,
		Offset: ctx.offset,
		Char:   c,
	})
}
