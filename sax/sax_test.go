package sax_test

import (
	"errors"
	"testing"

	"github.com/lestrrat-go/lmp/sax"
	"github.com/stretchr/testify/require"
)

type element struct {
	name, text string
}

func (e element) Name() []byte { return []byte(e.name) }
func (e element) Text() []byte { return []byte(e.text) }

func TestInterface(t *testing.T) {
	var h sax.Handler = sax.New()
	_ = h
}

func TestSAX2(t *testing.T) {
	t.Run("unset callbacks are no-ops", func(t *testing.T) {
		s := sax.New()
		require.NoError(t, s.StartDocument(nil))
		require.NoError(t, s.Characters(nil, []byte("foo")))
		require.NoError(t, s.Element(nil, element{name: "a"}))
		require.NoError(t, s.Recover(nil, sax.Recovery{Kind: sax.MalformedName}))
		require.NoError(t, s.EndDocument(nil))
	})
	t.Run("callbacks are dispatched", func(t *testing.T) {
		var got []string
		s := sax.New()
		s.CharactersHandler = func(_ sax.Context, content []byte) error {
			got = append(got, "chars:"+string(content))
			return nil
		}
		s.ElementHandler = func(_ sax.Context, elem sax.ParsedElement) error {
			got = append(got, "elem:"+string(elem.Name())+"="+string(elem.Text()))
			return nil
		}
		s.RecoverHandler = func(_ sax.Context, r sax.Recovery) error {
			got = append(got, "recover:"+r.Kind.String())
			return nil
		}

		require.NoError(t, s.Characters(nil, []byte("foo")))
		require.NoError(t, s.Element(nil, element{name: "a", text: "hi"}))
		require.NoError(t, s.Recover(nil, sax.Recovery{Kind: sax.MismatchedClose}))
		require.Equal(t, []string{"chars:foo", "elem:a=hi", "recover:MismatchedClose"}, got)
	})
	t.Run("errors propagate", func(t *testing.T) {
		stop := errors.New("stop")
		s := sax.New()
		s.ElementHandler = func(sax.Context, sax.ParsedElement) error {
			return stop
		}
		require.Equal(t, stop, s.Element(nil, element{name: "a"}))
	})
}

func TestRecoveryKindString(t *testing.T) {
	data := map[sax.RecoveryKind]string{
		sax.MalformedName:      "MalformedName",
		sax.MalformedSelfClose: "MalformedSelfClose",
		sax.MalformedClose:     "MalformedClose",
		sax.MismatchedClose:    "MismatchedClose",
		sax.Unterminated:       "Unterminated",
		sax.RecoveryKind(0):    "RecoveryKind(unknown)",
	}
	for kind, expected := range data {
		require.Equal(t, expected, kind.String())
	}
}
