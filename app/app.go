package app

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aphistic/gomol"
)

// App holds the process-level collaborators of the shell. Every field can be
// replaced before use, which is how tests run the shell against in-memory
// buffers.
type App struct {
	Arguments   []string
	Environment []string
	Context     context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Exit        func(int)

	// Options is populated by ParseArguments.
	Options Options

	loggerMu sync.Mutex
	logger   *gomol.Base

	errchMu sync.Mutex
	errch   chan error
}

func New() *App {
	return &App{
		Arguments:   os.Args[1:],
		Environment: os.Environ(),
		Context:     context.Background(),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Exit:        os.Exit,
		Options:     DefaultOptions(),
	}
}

// Logger returns the application logger, building it on first use.
func (a *App) Logger() *gomol.Base {
	a.loggerMu.Lock()
	defer a.loggerMu.Unlock()

	if a.logger == nil {
		a.logger = newLogger(a.Stderr, !a.Options.NoColor)
		a.logger.SetLogLevel(a.Options.LogLevel())
	}

	return a.logger
}

// Quit flushes the loggers and hands code to the Exit hook.
func (a *App) Quit(code int) {
	a.loggerMu.Lock()
	logger := a.logger
	a.loggerMu.Unlock()

	if logger != nil {
		// nothing useful can be done with a flush error this late
		_ = logger.ShutdownLoggers()
	}

	a.Exit(code)
}

func (a *App) ensureErrorChannel() {
	a.errchMu.Lock()
	defer a.errchMu.Unlock()

	if a.errch == nil {
		a.errch = make(chan error, 1)
	}
}

// Errors is drained by main, which logs whatever arrives before exiting.
func (a *App) Errors() <-chan error {
	a.ensureErrorChannel()
	return a.errch
}

// HandleError delivers err on the Errors channel and closes it. It may only
// be called once.
func (a *App) HandleError(err error) {
	a.ensureErrorChannel()
	defer close(a.errch)
	select {
	case a.errch <- err:
	case <-a.Context.Done():
	}
}

// LookupEnv searches the injected Environment rather than the process
// environment. Nothing is found once the app context is done.
func (a *App) LookupEnv(key string) (string, bool) {
	for _, line := range a.Environment {
		select {
		case <-a.Context.Done():
			return "", false
		default:
		}

		slice := strings.SplitN(line, "=", 2)
		if len(slice) == 2 && slice[0] == key {
			return slice[1], true
		}
	}

	return "", false
}
