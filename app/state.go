package app

import (
	"fmt"
	"os"

	"github.com/aphistic/gomol"
	"github.com/spf13/pflag"
)

const (
	// Name is used in usage output.
	Name = "cmdshell"

	// DefaultPrompt is printed before every line read.
	DefaultPrompt = "$>"

	// PromptEnv overrides the default prompt.
	PromptEnv = "CMDSHELL_PROMPT"

	// NoColorEnv disables colored output when set to a non-empty value.
	NoColorEnv = "NO_COLOR"
)

// Options are the settings the shell runs with.
type Options struct {
	Debug   bool
	NoColor bool
	Prompt  string
}

func DefaultOptions() Options {
	return Options{Prompt: DefaultPrompt}
}

// LogLevel maps Debug onto a gomol level.
func (o Options) LogLevel() gomol.LogLevel {
	if o.Debug {
		return gomol.LevelDebug
	}
	return gomol.LevelInfo
}

// ParseArguments fills a.Options from the environment and then from
// a.Arguments, so flags win. A pflag.ErrHelp error means usage was printed.
func (a *App) ParseArguments() error {
	opts := DefaultOptions()
	if v, ok := a.LookupEnv(PromptEnv); ok && v != "" {
		opts.Prompt = v
	}
	if v, ok := a.LookupEnv(NoColorEnv); ok && v != "" {
		opts.NoColor = true
	}

	flags := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	flags.SetOutput(a.Stderr)
	flags.Usage = func() {
		fmt.Fprintf(a.Stderr, "usage: %s [flags]\n", Name)
		flags.PrintDefaults()
	}
	flags.BoolVar(&opts.Debug, "debug", false, "Print debug statements to STDERR.")
	flags.BoolVar(&opts.NoColor, "no-color", opts.NoColor, "Disable colored OK/ERROR labels (or "+NoColorEnv+").")
	flags.StringVar(&opts.Prompt, "prompt", opts.Prompt, "The prompt printed before each line (or "+PromptEnv+").")

	if err := flags.Parse(a.Arguments); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	a.Options = opts

	logger := a.Logger()
	logger.SetLogLevel(opts.LogLevel())
	logger.Debugf("Debug      = %t", opts.Debug)
	logger.Debugf("NoColor    = %t", opts.NoColor)
	logger.Debugf("Prompt     = %q", opts.Prompt)
	logger.Debugf("executable = %s", stringOrError(os.Executable))
	logger.Debugf("pid        = %d", os.Getpid())
	logger.Debugf("cwd        = %s", stringOrError(os.Getwd))

	return nil
}
