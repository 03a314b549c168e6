package ir

// RunStatus is the outcome recorded for a run.
type RunStatus string

const (
	RunOK    RunStatus = "ok"
	RunError RunStatus = "error"
)

// RunRecord is the history entry kept for one invocation. Seq is assigned
// by the store; zero before the record is written.
type RunRecord struct {
	Seq         int64     `json:"seq"`
	RunID       string    `json:"run_id"`
	Notation    Notation  `json:"notation"`
	Start       string    `json:"start"`
	End         string    `json:"end,omitempty"`
	Increment   string    `json:"increment"`
	NumberLines bool      `json:"number_lines"`
	Items       int       `json:"items"`
	Lines       int       `json:"lines"`
	Unnumbered  int       `json:"unnumbered"`
	Status      RunStatus `json:"status"`
	ErrorCode   ErrorCode `json:"error_code,omitempty"`
}
