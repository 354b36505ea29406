// Package runner feeds Lox source, one complete unit at a time, through the
// scanner and the parser and prints the result.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ltungv/lox/gloxfront/internal/config"
	"github.com/ltungv/lox/gloxfront/internal/lox"
)

// Runner runs source units and reports Lox errors to its reporter.
type Runner struct {
	cfg      *config.Config
	output   io.Writer
	reporter lox.Reporter
	printer  *lox.AstPrinter
	log      logrus.FieldLogger
}

// New creates a runner writing results to output and Lox errors to errOutput.
func New(cfg *config.Config, output, errOutput io.Writer, log logrus.FieldLogger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	var reporter lox.Reporter
	if cfg.Output.Color {
		reporter = newStyledReporter(errOutput)
	} else {
		reporter = lox.NewSimpleReporter(errOutput)
	}

	return &Runner{
		cfg:      cfg,
		output:   output,
		reporter: reporter,
		printer:  &lox.AstPrinter{},
		log:      log,
	}
}

// HadError reports whether a Lox error was reported since the last reset.
func (r *Runner) HadError() bool {
	return r.reporter.HadError()
}

// Run scans and parses one source unit. The resulting tree, or the token
// sequence in tokens mode, is written to the output. A lexical or syntax
// error is reported and returned.
func (r *Runner) Run(source string) error {
	tokens, err := lox.Scan(source)
	if err != nil {
		r.reporter.Report(err)
		return err
	}
	r.log.WithField("tokens", len(tokens)).Debug("scanned source")

	if r.cfg.Output.Mode == config.ModeTokens {
		for _, tok := range tokens {
			fmt.Fprintln(r.output, tok)
		}
		return nil
	}

	parser, err := lox.NewParser(tokens)
	if err != nil {
		return fmt.Errorf("%w: %v", lox.ErrInternal, err)
	}
	expr, err := parser.Parse()
	if err != nil {
		r.reporter.Report(err)
		return err
	}
	if next := parser.Next(); next.Typ != lox.EOF {
		r.log.WithFields(logrus.Fields{
			"line":   next.Line,
			"lexeme": next.Lexeme,
		}).Debug("ignoring tokens after expression")
	}
	fmt.Fprintln(r.output, r.printer.Print(expr))
	return nil
}

// RunFile runs the content of the file at path as a single source unit.
func (r *Runner) RunFile(path string) error {
	r.log.WithField("path", path).Debug("running script")

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return r.Run(string(content))
}

// RunPrompt reads lines from in and runs each as its own source unit, until
// the exit command, the end of input or the context is done. Errors in a line
// are reported and do not end the session. A done context ends the prompt even
// while it waits for input.
func (r *Runner) RunPrompt(ctx context.Context, in io.Reader) error {
	r.log.Debug("starting prompt")

	prompt := r.cfg.REPL.Prompt
	if r.cfg.Output.Color {
		prompt = promptStyle.Render(prompt)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, in)
	for {
		fmt.Fprint(r.output, prompt)
		if err := ctx.Err(); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			r.log.Debug("prompt interrupted")
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				return <-errc
			}
			line = strings.TrimRight(text, "\r")
		}

		if line == r.cfg.REPL.ExitCommand {
			r.log.Debug("exit command received")
			return nil
		}
		if err := r.Run(line); err != nil {
			r.log.WithError(err).Debug("line failed")
		}
		r.reporter.Reset()
	}
}

// readLines sends every line of in to the returned channel until the input
// ends or ctx is done. The channel is closed afterwards, and the reason is
// available on the error channel by then.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(in)
		s.Split(bufio.ScanLines)
		for s.Scan() {
			select {
			case lines <- s.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- s.Err()
	}()
	return lines, errc
}
