package lmp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	data := map[byte]charClass{
		'<':  clsOpen,
		'>':  clsClose,
		'/':  clsSlash,
		'a':  clsName,
		'z':  clsName,
		'A':  clsName,
		'Z':  clsName,
		'-':  clsName,
		'_':  clsName,
		'0':  clsOther,
		' ':  clsOther,
		':':  clsOther,
		'.':  clsOther,
		0x00: clsOther,
		0x7f: clsOther,
		0x80: clsOther,
		0xff: clsOther,
	}
	for c, expected := range data {
		require.Equal(t, expected, classify(c, false), "classify(%q)", c)
	}

	for _, c := range []byte{0x80, 0xc3, 0xe5, 0xff} {
		require.Equal(t, clsName, classify(c, true), "classify(%q) with high-bit names", c)
	}
	require.Equal(t, clsOther, classify('0', true))
}

func TestTransitionTable(t *testing.T) {
	type result struct {
		next scanState
		act  scanAction
	}
	classes := []charClass{clsName, clsOpen, clsClose, clsSlash, clsOther}
	table := map[scanState]map[charClass]result{
		stText: {
			clsName:  {stText, actBuffer},
			clsOpen:  {stTagName, actStartTag},
			clsClose: {stText, actBuffer},
			clsSlash: {stText, actBuffer},
			clsOther: {stText, actBuffer},
		},
		stTagName: {
			clsName:  {stTagName, actName},
			clsOpen:  {stText, actBadName},
			clsClose: {stElementOpen, actNone},
			clsSlash: {stSelfCloseWait, actNone},
			clsOther: {stText, actBadName},
		},
		stSelfCloseWait: {
			clsName:  {stText, actBadSelfClose},
			clsOpen:  {stText, actBadSelfClose},
			clsClose: {stText, actEmit},
			clsSlash: {stText, actBadSelfClose},
			clsOther: {stText, actBadSelfClose},
		},
		stElementOpen: {
			clsName:  {stElementOpen, actBody},
			clsOpen:  {stCloseSeqWait, actBuffer},
			clsClose: {stElementOpen, actBody},
			clsSlash: {stElementOpen, actBody},
			clsOther: {stElementOpen, actBody},
		},
		stCloseSeqWait: {
			clsName:  {stText, actBadClose},
			clsOpen:  {stText, actBadClose},
			clsClose: {stText, actBadClose},
			clsSlash: {stCloseName, actNone},
			clsOther: {stText, actBadClose},
		},
		stCloseName: {
			clsName:  {stCloseName, actCheck},
			clsOpen:  {stCloseName, actNone},
			clsClose: {stText, actCloseTag},
			clsSlash: {stCloseName, actNone},
			clsOther: {stCloseName, actNone},
		},
	}

	for state, row := range table {
		require.Len(t, row, len(classes), "row for %s must cover every class", state)
		for _, cls := range classes {
			expected := row[cls]
			next, act := transition(state, cls)
			require.Equal(t, expected.next, next, "next state for (%s, %d)", state, cls)
			require.Equal(t, expected.act, act, "action for (%s, %d)", state, cls)
		}
	}
}

func TestScanStateString(t *testing.T) {
	data := map[scanState]string{
		stText:          "Text",
		stTagName:       "TagName",
		stSelfCloseWait: "SelfCloseWait",
		stElementOpen:   "ElementOpen",
		stCloseSeqWait:  "CloseSeqWait",
		stCloseName:     "CloseName",
		scanState(99):   "scanState(unknown)",
	}
	for s, expected := range data {
		require.Equal(t, expected, s.String())
	}
}

func TestScanCtxBuffers(t *testing.T) {
	p := NewParser()
	ctx := &scanCtx{}
	ctx.init(t.Context(), p)
	defer ctx.release()

	feed := func(s string) {
		for i := 0; i < len(s); i++ {
			require.NoError(t, ctx.step(s[i]))
		}
	}

	t.Run("element body is mirrored in the raw buffer", func(t *testing.T) {
		feed("<ab>cd")
		require.Equal(t, stElementOpen, ctx.state)
		require.Equal(t, "<abcd", string(ctx.raw))
		require.Equal(t, "ab", string(ctx.name))
		require.Equal(t, "cd", string(ctx.text))
	})
	t.Run("close name accumulates name characters only", func(t *testing.T) {
		feed("</a 9b")
		require.Equal(t, stCloseName, ctx.state)
		require.Equal(t, "ab", string(ctx.check))
		require.Equal(t, "<abcd<", string(ctx.raw))
	})
	t.Run("matching close clears everything", func(t *testing.T) {
		feed(">")
		require.Equal(t, stText, ctx.state)
		require.Empty(t, ctx.raw)
		require.Empty(t, ctx.name)
		require.Empty(t, ctx.text)
		require.Equal(t, 1, ctx.doc.NodeCount())
	})
	t.Run("entering a tag resets the element", func(t *testing.T) {
		feed("<x/y")
		require.Equal(t, stText, ctx.state)
		require.Equal(t, "<xy", string(ctx.raw))
		require.Empty(t, ctx.name)
		feed("<z")
		require.Equal(t, "z", string(ctx.name))
	})
}
