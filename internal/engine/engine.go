package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/render"
	"github.com/roach88/sequ/internal/sequence"
)

// Recorder persists a history entry per run. Implemented by store.Store.
type Recorder interface {
	RecordRun(ctx context.Context, rec ir.RunRecord) (int64, error)
}

// Engine executes sequence requests.
type Engine struct {
	recorder Recorder
	ids      RunIDGenerator
	logger   *slog.Logger
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine. A nil recorder disables history; a nil ids
// defaults to UUIDv7Generator.
func New(recorder Recorder, ids RunIDGenerator, opts ...EngineOption) *Engine {
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	e := &Engine{
		recorder: recorder,
		ids:      ids,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Result describes a finished run.
type Result struct {
	RunID  string
	Policy sequence.OverflowPolicy
	render.Stats
}

// Run executes req, writing to out. In number-lines mode in is read to the
// end before anything is written, since widths depend on the line count.
func (e *Engine) Run(ctx context.Context, req ir.Request, in io.Reader, out io.Writer) (Result, error) {
	res := Result{RunID: e.ids.Generate()}
	log := e.logger.With("run_id", res.RunID)

	log.Debug("run starting",
		"notation", req.Notation,
		"start", req.Start,
		"end", req.End,
		"increment", req.Increment,
		"width", req.Width,
		"number_lines", req.NumberLines,
	)

	runErr := e.execute(req, in, out, &res, log)
	if runErr != nil {
		log.Debug("run failed", "code", ir.CodeOf(runErr), "error", runErr)
	} else {
		log.Debug("run complete", "items", res.Items, "lines", res.Lines, "unnumbered", res.Unnumbered)
	}

	if e.recorder != nil {
		rec := newRecord(res, req, runErr)
		seq, err := e.recorder.RecordRun(ctx, rec)
		if err != nil {
			log.Error("failed to record run", "error", err)
			if runErr == nil {
				return res, fmt.Errorf("record run: %w", err)
			}
		} else {
			log.Debug("run recorded", "seq", seq)
		}
	}
	return res, runErr
}

func (e *Engine) execute(req ir.Request, in io.Reader, out io.Writer, res *Result, log *slog.Logger) error {
	var lines []string
	if req.NumberLines {
		var err error
		if lines, err = render.ReadLines(in); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		log.Debug("input read", "lines", len(lines))
	}

	gen, err := sequence.New(req)
	if err != nil {
		return err
	}
	res.Policy = gen.Policy()

	if req.NumberLines {
		res.Stats, err = render.NumberLines(out, gen, req, lines)
		if res.Unnumbered > 0 {
			log.Debug("numbering stopped", "policy", res.Policy, "unnumbered", res.Unnumbered)
		}
		return err
	}

	if gen.Halted() {
		log.Debug("increment points away from end, nothing to print")
	}
	res.Stats, err = render.WriteSequence(out, gen, req)
	return err
}

func newRecord(res Result, req ir.Request, runErr error) ir.RunRecord {
	rec := ir.RunRecord{
		RunID:       res.RunID,
		Notation:    req.Notation,
		Start:       req.Start,
		End:         req.End,
		Increment:   req.Increment,
		NumberLines: req.NumberLines,
		Items:       res.Items,
		Lines:       res.Lines,
		Unnumbered:  res.Unnumbered,
		Status:      ir.RunOK,
	}
	if req.NumberLines {
		rec.End = ""
	}
	if runErr != nil {
		rec.Status = ir.RunError
		rec.ErrorCode = ir.CodeOf(runErr)
	}
	return rec
}
