package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrompt = lipgloss.Color("#8B5CF6") // Violet
	colorError  = lipgloss.Color("#EF4444") // Red
)

var (
	promptStyle = lipgloss.NewStyle().
		Foreground(colorPrompt).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError)
)

// styledReporter renders every reported error with errorStyle.
type styledReporter struct {
	writer io.Writer
	style  lipgloss.Style
	hadErr bool
}

func newStyledReporter(writer io.Writer) *styledReporter {
	return &styledReporter{writer: writer, style: errorStyle}
}

func (r *styledReporter) Report(err error) {
	r.hadErr = true
	fmt.Fprintln(r.writer, r.style.Render(err.Error()))
}

func (r *styledReporter) HadError() bool {
	return r.hadErr
}

func (r *styledReporter) Reset() {
	r.hadErr = false
}
