package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/numeral"
)

// Scenario defines a conformance scenario: one request, its input and the
// expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Request is the sequence request under test.
	Request RequestSpec `yaml:"request"`

	// Input is fed to the run in number-lines mode.
	Input string `yaml:"input,omitempty"`

	// Expect holds the expected outcome.
	Expect ExpectClause `yaml:"expect"`

	// Golden compares Output with testdata/golden/{Name}.golden.
	Golden bool `yaml:"golden,omitempty"`
}

// RequestSpec is the YAML shape of an ir.Request. Fields keep their
// literal form so invalid requests can be expressed too.
type RequestSpec struct {
	Notation    string  `yaml:"notation"`
	Start       string  `yaml:"start"`
	End         string  `yaml:"end,omitempty"`
	Increment   string  `yaml:"increment"`
	Separator   *string `yaml:"separator,omitempty"`
	Width       string  `yaml:"width,omitempty"`
	Pad         string  `yaml:"pad,omitempty"`
	Format      string  `yaml:"format,omitempty"`
	NumberLines bool    `yaml:"number_lines,omitempty"`
}

// ExpectClause specifies the expected outcome. Nil fields are not checked.
type ExpectClause struct {
	// Output is the exact expected output.
	Output *string `yaml:"output,omitempty"`

	// Error is the expected ir.ErrorCode. Empty means the run must succeed.
	Error string `yaml:"error,omitempty"`

	// Items is the expected number of rendered items.
	Items *int `yaml:"items,omitempty"`

	// Unnumbered is the expected number of lines left without a prefix.
	Unnumbered *int `yaml:"unnumbered,omitempty"`
}

// ToRequest validates the literal fields and builds the ir.Request the
// command layer would have built.
func (r RequestSpec) ToRequest() (ir.Request, error) {
	notation, err := ir.ParseNotation(r.Notation)
	if err != nil {
		return ir.Request{}, err
	}

	width, ok := ir.ParseWidthMode(r.Width)
	if !ok {
		return ir.Request{}, fmt.Errorf("unknown width mode %q", r.Width)
	}

	req := ir.Request{
		Notation:    notation,
		Start:       r.Start,
		End:         r.End,
		Increment:   r.Increment,
		Separator:   ir.DefaultSeparator,
		Width:       width,
		NumberLines: r.NumberLines,
	}
	if r.Separator != nil {
		req.Separator = ir.NormalizeText(*r.Separator)
	}
	if r.Pad != "" {
		if req.Pad, err = ir.ParsePad(r.Pad); err != nil {
			return ir.Request{}, err
		}
	}
	if r.Format != "" {
		f, err := numeral.ParseFloatFormat(r.Format)
		if err != nil {
			return ir.Request{}, err
		}
		req.Format = &f
	}
	return req, nil
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "expects:" vs "expect:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate scenario name %q (also in %s)", filepath.Base(path), s.Name, prev)
		}
		seen[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Request.Notation == "" {
		return fmt.Errorf("request.notation is required")
	}

	if s.Request.Start == "" {
		return fmt.Errorf("request.start is required")
	}

	if s.Request.Increment == "" {
		return fmt.Errorf("request.increment is required")
	}

	if !s.Request.NumberLines && s.Request.End == "" {
		return fmt.Errorf("request.end is required unless number_lines is set")
	}

	if s.Input != "" && !s.Request.NumberLines {
		return fmt.Errorf("input is only read in number_lines mode")
	}

	e := s.Expect
	if e.Output == nil && e.Error == "" && e.Items == nil && e.Unnumbered == nil && !s.Golden {
		return fmt.Errorf("expect must check something (output, error, items, unnumbered) or golden must be set")
	}

	if e.Error != "" && (e.Output != nil || e.Items != nil || s.Golden) {
		return fmt.Errorf("expect.error cannot be combined with output, items or golden")
	}

	return nil
}
