package harness

import (
	"github.com/roach88/sequ/internal/engine"
	"github.com/roach88/sequ/internal/ir"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every expectation matched.
	Pass bool `json:"pass"`

	// Output is everything the run wrote.
	Output string `json:"output"`

	// Err is the run's error, if any.
	Err error `json:"-"`

	// Run is the engine's summary. Zero if the request never reached it.
	Run engine.Result `json:"run"`

	// Record is the history entry read back from the store.
	Record *ir.RunRecord `json:"record,omitempty"`

	// Errors contains expectation failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
