package command

import (
	"fmt"

	"github.com/aphistic/gomol"

	"github.com/demosdemon/cmdshell/app"
)

// Dispatcher resolves the first token of a line against a Registry and runs
// the matching command.
type Dispatcher struct {
	registry *Registry
	logger   *gomol.Base
}

func NewDispatcher(registry *Registry, logger *gomol.Base) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch runs the command named by tokens[0] and returns its result
// unchanged. The remaining tokens are not handed to the command. Unknown
// names and panicking handlers become failures; Dispatch itself never fails.
func (d *Dispatcher) Dispatch(tokens []string) Result {
	if len(tokens) == 0 {
		return Failure(ErrCommandNotFound.Error())
	}

	name := tokens[0]
	cmd, ok := d.registry.Lookup(name)
	if !ok {
		d.logger.Debugf("lookup %q: %v", name, ErrCommandNotFound)
		return Failure(ErrCommandNotFound.Error())
	}

	d.logger.Debugf("invoking %s with %d ignored argument(s)", cmd, len(tokens)-1)

	var res Result
	err := app.Capture(func() {
		res = cmd.Execute()
	})
	if wp, ok := err.(*app.WrappedPanic); ok {
		d.logger.Debugf("%s panicked: %v\n%s", cmd, wp.Value, wp.Stack)
		return Failure(fmt.Sprintf("panic: %v", wp.Value))
	}

	d.logger.Debugf("%s finished with %s", cmd, res.Outcome)
	return res
}
