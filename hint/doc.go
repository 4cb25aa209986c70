// Package hint implements caret-relative autocomplete: detecting the word
// being typed at the caret, filtering candidates by prefix, tracking the
// dropdown selection, and splicing a chosen candidate into the text.
//
// Everything here is pure and UI-agnostic; the hintbox package wires it to a
// Bubble Tea editor. Offsets are rune offsets.
package hint
