package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/lox/gloxfront/internal/config"
	"github.com/ltungv/lox/gloxfront/internal/lox"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	cfgFile, verbose, noColor = "", false, false

	var out, errOut strings.Builder
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecuteScript(t *testing.T) {
	script := writeFile(t, "expr.lox", "-123 * (45.67)")

	out, _, err := execute(t, "", "--no-color", script)

	assert.NoError(t, err)
	assert.Equal(t, "(* (- 123) (group 45.67))\n", out)
}

func TestExecuteScriptWithError(t *testing.T) {
	script := writeFile(t, "bad.lox", "(1")

	_, errOut, err := execute(t, "", "--no-color", script)

	assert.Error(t, err)
	assert.Equal(t, exitDataErr, ExitCode(err))
	assert.Equal(t, "[line 1] Error at end: Expect ')' after expression.\n", errOut)
}

func TestExecuteTokens(t *testing.T) {
	out, _, err := execute(t, "1\nexit\n", "tokens", "--no-color")

	assert.NoError(t, err)
	assert.Equal(t, "> NUMBER 1 1\nEOF  nil\n> ", out)
}

func TestExecuteWithConfig(t *testing.T) {
	cfg := writeFile(t, "glox.yaml", "repl:\n  prompt: \"lox> \"\noutput:\n  color: false\n")

	out, _, err := execute(t, "true\nexit\n", "--config", cfg)

	assert.NoError(t, err)
	assert.Equal(t, "lox> true\nlox> ", out)
}

func TestExecuteTooManyArgs(t *testing.T) {
	_, _, err := execute(t, "", "a.lox", "b.lox")

	assert.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing.lox"))

	testCases := []struct {
		err  error
		code int
	}{
		{nil, exitOK},
		{lox.NewLexError(1, "Unexpected character."), exitDataErr},
		{lox.NewSyntaxError(lox.NewToken(lox.EOF, "", lox.Nil, 1), "Expect expression."), exitDataErr},
		{fmt.Errorf("%w: scanned number", lox.ErrInternal), exitSoftware},
		{&usageError{errors.New("bad config")}, exitUsage},
		{fmt.Errorf("read script: %w", statErr), exitIOErr},
		{errors.New("unknown flag: --nope"), exitUsage},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.code, ExitCode(tc.err), fmt.Sprint(tc.err))
	}
}
