package main

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/demosdemon/cmdshell/app"
	"github.com/demosdemon/cmdshell/command"
	"github.com/demosdemon/cmdshell/shell"
)

var instance = app.New()

func main() {
	a := instance
	done := make(chan struct{})

	go func() {
		for err := range a.Errors() {
			a.Logger().Error(err.Error())
		}

		done <- struct{}{}
	}()

	err := a.ParseArguments()
	if errors.Is(err, pflag.ErrHelp) {
		a.Quit(0)
		return
	}
	if err != nil {
		a.HandleError(err)
		<-done
		a.Quit(2)
		return
	}

	a.Quit(run(a, done))
}

func run(a *app.App, done <-chan struct{}) int {
	registry := command.NewRegistry()
	command.RegisterBuiltins(registry)
	a.Logger().Debugf("registered %d commands: %v", registry.Len(), registry.Names())

	sh := shell.New(a, command.NewDispatcher(registry, a.Logger()))
	defer sh.Close()

	code, err := sh.Run()
	if err != nil {
		a.HandleError(err)
		<-done
	}

	return code
}
