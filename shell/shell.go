// Package shell drives the read, tokenize, dispatch and report cycle.
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/demosdemon/cmdshell/app"
	"github.com/demosdemon/cmdshell/command"
)

// Shell handles one command per input line, synchronously, until a command
// terminates it or input runs out.
type Shell struct {
	app        *app.App
	dispatcher *command.Dispatcher
	input      LineReader
	reporter   *Reporter
	prompt     string
}

type Option func(*Shell)

// WithLineReader replaces the reader chosen by NewLineReader.
func WithLineReader(r LineReader) Option {
	return func(s *Shell) { s.input = r }
}

// WithPrompt overrides a.Options.Prompt.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

func New(a *app.App, d *command.Dispatcher, opts ...Option) *Shell {
	s := &Shell{
		app:        a,
		dispatcher: d,
		reporter:   NewReporter(a.Stdout, a.Options.NoColor),
		prompt:     a.Options.Prompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.input == nil {
		s.input = NewLineReader(a)
	}
	return s
}

// Run returns the exit code requested by a terminating command, or 0 once
// input is exhausted. Any other read or write failure is returned as an error
// along with exit code 1.
func (s *Shell) Run() (int, error) {
	logger := s.app.Logger()

	for {
		line, err := s.input.ReadLine(s.prompt)
		switch {
		case err == nil:
		case errors.Is(err, ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			logger.Debug("end of input")
			return 0, nil
		default:
			return 1, fmt.Errorf("read input: %w", err)
		}

		tokens := command.Tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		res := s.dispatcher.Dispatch(tokens)
		if res.Outcome == command.Terminated {
			logger.Debugf("%s requested exit %d", tokens[0], res.Code)
			return res.Code, nil
		}

		if err := s.reporter.Report(res); err != nil {
			return 1, fmt.Errorf("write result: %w", err)
		}
	}
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.input.Close()
}
