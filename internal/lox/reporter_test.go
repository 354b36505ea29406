package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	r := NewSimpleReporter(io.Discard)

	assert.False(t, r.HadError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := NewLexError(1, "Unterminated string.")
	err2 := NewSyntaxError(tokEOF(2), "Expect expression.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(
		"[line 1] Error: Unterminated string.\n[line 2] Error at end: Expect expression.\n",
		out.String(),
	)
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(errors.New("Test error"))

	r.Reset()
	assert.False(t, r.HadError())
}
