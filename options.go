package lmp

import (
	"github.com/lestrrat-go/lmp/sax"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type identSAXHandler struct{}
type identHighBitNames struct{}

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithSAXHandler delivers scan events to h instead of the default
// TreeBuilder. The handler receives the *Document that Parse returns as
// its context value; the document stays empty unless h fills it.
func WithSAXHandler(h sax.Handler) ParseOption {
	return &parseOption{option.New(identSAXHandler{}, h)}
}

// WithHighBitNames makes bytes above 0x7F valid tag name characters,
// so that UTF-8 encoded names such as <名前> are accepted. By default
// such bytes terminate a tag name like any other invalid character.
func WithHighBitNames(v bool) ParseOption {
	return &parseOption{option.New(identHighBitNames{}, v)}
}
