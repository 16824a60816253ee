// Package lmp scans light markup: plain text interleaved with flat,
// attribute-free elements written as <name>text</name> or <name/>.
//
// Elements do not nest. Malformed tags never cause an error; the
// scanner recovers and the offending markup either becomes plain text
// or is dropped, so Parse always yields a document.
package lmp

const Version = "v0.1.0"
