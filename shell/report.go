package shell

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/demosdemon/cmdshell/command"
)

const (
	okLabel    = "OK:"
	errorLabel = "ERROR:"
)

// Reporter prints command results, one per line, with a label that tells
// success from failure.
type Reporter struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
}

func NewReporter(w io.Writer, noColor bool) *Reporter {
	r := &Reporter{
		w:    w,
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}
	if noColor {
		r.ok.DisableColor()
		r.fail.DisableColor()
	}
	return r
}

// Report writes res. Terminate results print nothing.
func (r *Reporter) Report(res command.Result) error {
	var label string
	switch res.Outcome {
	case command.Succeeded:
		label = r.ok.Sprint(okLabel)
	case command.Failed:
		label = r.fail.Sprint(errorLabel)
	default:
		return nil
	}

	_, err := fmt.Fprintf(r.w, "%s %s\n", label, res.Message)
	return err
}
