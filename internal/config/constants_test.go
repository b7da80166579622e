package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReportFormatRecognizesKnownValues(t *testing.T) {
	assert.Equal(t, ReportYAML, ParseReportFormat("yaml"))
	assert.Equal(t, ReportJSON, ParseReportFormat("json"))
	assert.Equal(t, ReportText, ParseReportFormat("text"))
}

func TestParseReportFormatDefaultsToTextForUnknownInput(t *testing.T) {
	assert.Equal(t, ReportText, ParseReportFormat("xml"))
	assert.Equal(t, ReportText, ParseReportFormat(""))
}
