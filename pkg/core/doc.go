// Package core ties the scanner, dispatcher and assembler together into the
// document transformation pipeline.
//
// A transformation is a single sequential pass: the text is scanned for
// directive groups, every occurrence is dispatched to the run or bundle
// backend in document order, and the outputs replace the groups' lines.
// Text outside directive groups is copied through byte for byte, so a
// document without tags is returned unchanged.
//
// The backends are always supplied by the caller through Options. The
// pipeline never constructs one on its own.
package core
