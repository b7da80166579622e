// Package report turns a completed analysis run's diagnostics into a
// stable, serializable artifact for editor plugins and CI steps that
// don't want to depend on this module's Go types.
package report

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
	"github.com/hexen-lang/hexen/internal/diagnostics"
)

// Entry is the wire shape of one diagnostic: diagnostics.DiagnosticError
// itself carries an unexported-shaped Pos (token.Position), so Entry
// flattens it into plain fields a consumer outside this module can parse
// without importing internal/token.
type Entry struct {
	Code string `yaml:"code" json:"code"`
	Message string `yaml:"message" json:"message"`
	Line int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
	Hint string `yaml:"hint,omitempty" json:"hint,omitempty"`
}

// Report is one analysis run's full diagnostic output, correlated by
// RunID so a consumer tracking diagnostics across runs can tell which
// run produced a given batch.
type Report struct {
	RunID string `yaml:"run_id" json:"run_id"`
	Diagnostics []Entry `yaml:"diagnostics" json:"diagnostics"`
}

// FromSink builds a Report from a completed Sink, preserving traversal
// order.
func FromSink(sink *diagnostics.Sink) *Report {
	diags := sink.All()
	entries := make([]Entry, len(diags))
	for i, d := range diags {
		entries[i] = Entry{
			Code: string(d.Code),
			Message: d.Message,
			Line: d.Pos.Line,
			Column: d.Pos.Column,
			Hint: d.Hint,
		}
	}
	return &Report{RunID: sink.RunID, Diagnostics: entries}
}

// Empty reports whether the run produced no diagnostics.
func (r *Report) Empty() bool {
	return len(r.Diagnostics) == 0
}

// YAML serializes the report with gopkg.in/yaml.v3.
func (r *Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return out, nil
}

// JSON serializes the report for tools that prefer JSON over YAML.
func (r *Report) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(r, "", " ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return out, nil
}
