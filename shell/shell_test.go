package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demosdemon/cmdshell/app"
	"github.com/demosdemon/cmdshell/command"
	"github.com/demosdemon/cmdshell/shell"
)

func newApp(input string) *app.App {
	return &app.App{
		Context: context.Background(),
		Stdin:   strings.NewReader(input),
		Stdout:  new(bytes.Buffer),
		Stderr:  new(bytes.Buffer),
		Exit: func(code int) {
			panic("unexpected exit")
		},
		Options: app.Options{Prompt: "$>", NoColor: true},
	}
}

func newShell(a *app.App, opts ...shell.Option) *shell.Shell {
	r := command.NewRegistry()
	command.RegisterBuiltins(r)
	return shell.New(a, command.NewDispatcher(r, a.Logger()), opts...)
}

func stdout(a *app.App) string {
	return a.Stdout.(*bytes.Buffer).String()
}

func TestShellSession(t *testing.T) {
	a := newApp("test\nunknown\n\n   \n  test   now \nexit\ntest\n")
	code, err := newShell(a).Run()

	assert.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t,
		"$>OK: test!\n"+
			"$>ERROR: command not found\n"+
			"$>"+
			"$>"+
			"$>OK: test!\n"+
			"$>",
		stdout(a),
	)
}

func TestShellExitPrintsNoReport(t *testing.T) {
	a := newApp("exit\n")
	code, err := newShell(a).Run()

	assert.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, "$>", stdout(a))
	assert.NotContains(t, stdout(a), "OK")
	assert.NotContains(t, stdout(a), "ERROR")
}

func TestShellEndOfInput(t *testing.T) {
	for _, input := range []string{"", "test\n", "test"} {
		a := newApp(input)
		code, err := newShell(a).Run()
		assert.NoError(t, err, "%q", input)
		assert.Zero(t, code, "%q", input)
	}

	a := newApp("test")
	_, _ = newShell(a).Run()
	assert.Equal(t, "$>OK: test!\n$>", stdout(a))
}

func TestShellTerminateCode(t *testing.T) {
	a := newApp("quit\ntest\n")
	r := command.NewRegistry()
	r.Register("quit", func() command.Result { return command.Terminate(7) })

	code, err := shell.New(a, command.NewDispatcher(r, a.Logger())).Run()
	assert.NoError(t, err)
	assert.Equal(t, 7, code)
	assert.Equal(t, "$>", stdout(a))
}

func TestShellPrompt(t *testing.T) {
	a := newApp("test\n")
	a.Options.Prompt = "shell> "
	_, _ = newShell(a).Run()
	assert.Equal(t, "shell> OK: test!\nshell> ", stdout(a))

	a = newApp("test\n")
	_, _ = newShell(a, shell.WithPrompt("% ")).Run()
	assert.Equal(t, "% OK: test!\n% ", stdout(a))
}

type scriptedReader struct {
	lines []string
	errs  []error
	calls int
}

func (s *scriptedReader) ReadLine(prompt string) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.lines) {
		return "", io.EOF
	}
	return s.lines[i], s.errs[i]
}

func (s *scriptedReader) Close() error { return nil }

func TestShellInterruptedLineReprompts(t *testing.T) {
	in := &scriptedReader{
		lines: []string{"", "test"},
		errs:  []error{shell.ErrInterrupted, nil},
	}
	a := newApp("")
	code, err := newShell(a, shell.WithLineReader(in)).Run()

	assert.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, 3, in.calls)
	assert.Equal(t, "OK: test!\n", stdout(a))
}

func TestShellReadFailure(t *testing.T) {
	in := &scriptedReader{
		lines: []string{"test", ""},
		errs:  []error{nil, assert.AnError},
	}
	a := newApp("")
	code, err := newShell(a, shell.WithLineReader(in)).Run()

	assert.Equal(t, 1, code)
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Equal(t, "OK: test!\n", stdout(a))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestShellWriteFailure(t *testing.T) {
	in := &scriptedReader{lines: []string{"test"}, errs: []error{nil}}
	a := newApp("")
	a.Stdout = failingWriter{}

	code, err := newShell(a, shell.WithLineReader(in)).Run()
	assert.Equal(t, 1, code)
	assert.True(t, errors.Is(err, assert.AnError))
}

func TestNewLineReaderFallsBackToBuffered(t *testing.T) {
	a := newApp("test\n")
	r := shell.NewLineReader(a)
	defer r.Close()

	line, err := r.ReadLine("$>")
	assert.NoError(t, err)
	assert.Equal(t, "test", line)
}
