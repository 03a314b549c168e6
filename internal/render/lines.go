package render

import (
	"bufio"
	"errors"
	"io"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/sequence"
)

// ReadLines consumes r to the end and returns its lines with their
// terminators. A final line without a newline is kept as is.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// NumberLines writes each input line prefixed by the matching item and the
// separator. Lines whose item is not Valid (the notation ran out under
// sequence.StopNumberingOnOverflow) are written bare.
func NumberLines(w io.Writer, g *sequence.Generator, req ir.Request, lines []string) (Stats, error) {
	stats := Stats{Lines: len(lines)}

	items, err := g.Number(len(lines))
	if err != nil {
		return stats, err
	}
	pad := NewPadder(req, items)

	bw := bufio.NewWriter(w)
	i := 0
	for v := range items {
		out := lines[i]
		if v.Valid {
			out = pad.Pad(v.Text) + req.Separator + out
			stats.Items++
		} else {
			stats.Unnumbered++
		}
		if _, err := bw.WriteString(out); err != nil {
			return stats, err
		}
		i++
	}
	return stats, bw.Flush()
}
