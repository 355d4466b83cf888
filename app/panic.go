package app

import (
	"bytes"
	"fmt"
	"runtime"
)

// WrappedPanic is a recovered panic value along with the stack of the
// goroutine that raised it.
type WrappedPanic struct {
	Value interface{}
	Stack string
}

func (p *WrappedPanic) Error() string {
	return fmt.Sprintf("panic: %v\n%v", p.Value, p.Stack)
}

// Capture runs fn and converts a panic inside it into a *WrappedPanic.
func Capture(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = NewWrappedPanic(p)
		}
	}()

	fn()
	return nil
}

func NewWrappedPanic(v interface{}) *WrappedPanic {
	var buf [16384]byte
	stack := buf[0:runtime.Stack(buf[:], false)]
	return &WrappedPanic{v, chopStack(stack, "panic(")}
}

// chopStack drops the frames between the goroutine header and the frame that
// called panic.
func chopStack(s []byte, panicText string) string {
	lfFirst := bytes.IndexByte(s, '\n')
	if lfFirst == -1 {
		return string(s)
	}

	stack := s[lfFirst:]
	f := []byte(panicText)
	panicLine := bytes.Index(stack, f)
	if panicLine == -1 {
		return string(s)
	}

	stack = stack[panicLine+1:]
	for i := 0; i < 2; i++ {
		nextLine := bytes.IndexByte(stack, '\n')
		if nextLine == -1 {
			return string(s)
		}
		stack = stack[nextLine+1:]
	}

	return string(s[:lfFirst+1]) + string(stack)
}
