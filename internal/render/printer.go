package render

import (
	"bufio"
	"io"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/sequence"
)

// Stats counts what a render call wrote.
type Stats struct {
	// Items is the number of rendered sequence items.
	Items int

	// Lines is the number of input lines (number-lines mode only).
	Lines int

	// Unnumbered is the number of lines written without a prefix.
	Unnumbered int
}

// WriteSequence writes every item of g followed by the separator.
//
// A newline separator already ends the last line. Any other separator is
// followed by a single newline once the run is complete, even if the range
// was empty. A halted alpha run writes nothing at all.
func WriteSequence(w io.Writer, g *sequence.Generator, req ir.Request) (Stats, error) {
	var stats Stats
	if g.Halted() {
		return stats, nil
	}

	pad := NewPadder(req, g.Values())
	bw := bufio.NewWriter(w)
	for v := range g.Values() {
		if _, err := bw.WriteString(pad.Pad(v.Text) + req.Separator); err != nil {
			return stats, err
		}
		stats.Items++
	}
	if req.Separator != "\n" {
		if err := bw.WriteByte('\n'); err != nil {
			return stats, err
		}
	}
	return stats, bw.Flush()
}
