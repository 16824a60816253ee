//go:build debug

package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stderr, "|LMP| ", 0)

// Printf prints scanner trace messages. Only available if compiled with the "debug" tag
func Printf(f string, args ...interface{}) {
	logger.Printf(f, args...)
}

// Dump dumps the objects using go-spew
func Dump(v ...interface{}) {
	spew.Fdump(os.Stderr, v...)
}
