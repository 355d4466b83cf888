package command

import "fmt"

// Outcome tags a Result.
type Outcome uint8

const (
	// Succeeded carries a message for the user.
	Succeeded Outcome = iota
	// Failed carries an error message for the user.
	Failed
	// Terminated asks the shell to stop and exit with Result.Code.
	Terminated
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "success"
	case Failed:
		return "failure"
	case Terminated:
		return "terminate"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Result is what invoking a handler produces. It is consumed by the shell's
// report step and never stored.
type Result struct {
	Outcome Outcome
	Message string
	Code    int
}

func Success(message string) Result {
	return Result{Outcome: Succeeded, Message: message}
}

func Failure(message string) Result {
	return Result{Outcome: Failed, Message: message}
}

// Terminate is returned by handlers that end the shell. No report is printed
// for it.
func Terminate(code int) Result {
	return Result{Outcome: Terminated, Code: code}
}

func (r Result) OK() bool { return r.Outcome == Succeeded }
