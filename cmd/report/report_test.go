package report_test

import (
	"testing"

	"paisaparse/cmd/report"

	"github.com/stretchr/testify/assert"
)

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", report.Cmd.Use)
	assert.Contains(t, report.Cmd.Short, "Summarize")
	assert.Contains(t, report.Cmd.Long, "per-category totals")
	assert.NotNil(t, report.Cmd.Run)
}
