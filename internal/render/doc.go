// Package render turns generated items into output text.
//
// Padder equalizes widths, WriteSequence prints a standalone range and
// NumberLines prefixes supplied lines. Width modes need the widest item
// before the first one is written; the generator is restartable, so the
// measuring pass simply ranges over it once more instead of buffering.
package render
