package command

const (
	TestName = "test"
	ExitName = "exit"
)

// RegisterBuiltins adds test and exit, in that order, so they get IDs 0 and 1
// on a fresh registry.
func RegisterBuiltins(r *Registry) {
	r.Register(TestName, testCommand)
	r.Register(ExitName, exitCommand)
}

func testCommand() Result {
	return Success("test!")
}

func exitCommand() Result {
	return Terminate(0)
}
