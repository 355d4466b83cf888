package app

import (
	"io"

	"github.com/aphistic/gomol"
	gc "github.com/aphistic/gomol-console"
)

const (
	logTemplate = `{{.Template.Format "2006-01-02 15:04:05.000"}} [{{color}}{{ucase .LevelName}}{{reset}}] {{.Message}}`

	fullLogTemplate = logTemplate + `{{if .Attrs}} {{json .Attrs}}{{end}}`
)

// newLogger builds an initialized gomol base writing to w through a single
// console logger.
func newLogger(w io.Writer, colorize bool) *gomol.Base {
	consoleConfig := gc.ConsoleLoggerConfig{
		Colorize: colorize,
		Writer:   w,
	}

	// err is always nil
	consoleLogger, _ := gc.NewConsoleLogger(&consoleConfig)

	// err is always nil because the template is not dynamic
	tpl, _ := gomol.NewTemplate(fullLogTemplate)

	// err is always nil if the template is non-nil
	_ = consoleLogger.SetTemplate(tpl)

	logger := gomol.NewBase(
		func(b *gomol.Base) {
			b.SetConfig(
				&gomol.Config{
					FilenameAttr:   "filename",
					LineNumberAttr: "lineno",
					SequenceAttr:   "seq",
					MaxQueueSize:   10000,
				},
			)
		},
	)

	// err is always nil since we're not reusing objects
	_ = logger.AddLogger(consoleLogger)

	if err := logger.InitLoggers(); err != nil {
		panic(err)
	}

	return logger
}

func stringOrError(call func() (string, error)) string {
	rv, err := call()
	if err == nil {
		return rv
	}
	return err.Error()
}
