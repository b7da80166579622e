// Package config carries the small set of mutable, package-level knobs
// the rest of the module reads at run time, rather than threading a
// config struct through every call.
package config

// Version is the current analyzer version, set at build time via
// -ldflags "-X github.com/hexen-lang/hexen/internal/config.Version=...".
var Version = "0.1.0"

// IsTestMode is set by `hexen test` (or HEXEN_TEST_MODE=1); cmd/hexen
// then prints diagnostics without ANSI color even on a terminal.
var IsTestMode = false

// ReportFormat selects how cmd/hexen renders a run's diagnostics.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// ParseReportFormat maps a CLI flag value to a ReportFormat, defaulting
// to text for anything unrecognized rather than failing the run over a
// cosmetic flag.
func ParseReportFormat(s string) ReportFormat {
	switch ReportFormat(s) {
	case ReportYAML:
		return ReportYAML
	case ReportJSON:
		return ReportJSON
	default:
		return ReportText
	}
}
