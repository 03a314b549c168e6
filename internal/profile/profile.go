// Package profile loads request defaults from a CUE or YAML file.
//
// A profile names the options a user would otherwise repeat on every
// invocation:
//
//	notation:  "roman"
//	separator: ", "
//	width:     "pad"
//	pad:       "."
//
// Both formats are checked against the embedded #Profile CUE definition,
// which is closed: misspelled fields are errors, not silently ignored.
package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Profile holds optional request defaults. Nil fields were not set.
type Profile struct {
	Notation  *string `json:"notation,omitempty" yaml:"notation"`
	Separator *string `json:"separator,omitempty" yaml:"separator"`
	Words     *bool   `json:"words,omitempty" yaml:"words"`
	Width     *string `json:"width,omitempty" yaml:"width"`
	Pad       *string `json:"pad,omitempty" yaml:"pad"`
	Format    *string `json:"format,omitempty" yaml:"format"`
}

// LoadError reports a profile that could not be read or failed validation.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("profile %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the profile at path. The extension selects the format:
// .cue, or .yaml/.yml.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read", Err: err}
	}

	var p *Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		p, err = ParseCUE(data)
	case ".yaml", ".yml":
		p, err = ParseYAML(data)
	default:
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("unsupported extension %q (want .cue, .yaml or .yml)", ext)}
	}
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid profile", Err: err}
	}
	return p, nil
}

// ParseCUE compiles src and validates it against #Profile.
func ParseCUE(src []byte) (*Profile, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return validate(ctx, v)
}

// ParseYAML decodes src strictly and validates it against #Profile.
func ParseYAML(src []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		// An empty document is an empty profile.
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ctx := cuecontext.New()
	return validate(ctx, ctx.Encode(p))
}

func validate(ctx *cue.Context, v cue.Value) (*Profile, error) {
	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Profile"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	unified := schema.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}

	var p Profile
	if err := unified.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
