package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go
// https://github.com/pkg/errors/blob/master/errors.go

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) file() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(pc)
	return f
}

func (frame Frame) line() int {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(pc)
	return l
}

func (frame Frame) name() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - verbose, equivalent to %s:%d
// %+s - full path, the root path is relative to the compile time GOPATH
// separated by \n\t (<function-name>\n\t<path>)
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.line()))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

// For fmt.Sprintf("%+v", frame).
// If json.Marshaler interface isn't implemented, the MarshalText method is used.
func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(frame.file())
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(frame.line()))
	return []byte(builder.String()), nil
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

type stackTrace []Frame

func (st stackTrace) Format(s fmt.State, verb rune) {
	if verb != 'v' || !s.Flag('+') {
		return
	}
	for _, frame := range st {
		_, _ = io.WriteString(s, "\n")
		frame.Format(s, verb)
	}
}

func callers(skip int) stackTrace {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	st := make(stackTrace, 0, n)
	for _, pc := range pcs[:n] {
		st = append(st, Frame(pc))
	}
	return st
}

// errorStack carries an error message, an optional cause and the call
// stack snapshot captured at construction time.
type errorStack struct {
	cause error
	msg   string
	trace stackTrace
}

func (e *errorStack) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if len(e.msg) <= 0 {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap, keeps the sentinel error reachable for errors.Is and errors.As.
func (e *errorStack) Unwrap() error {
	return e.cause
}

func (e *errorStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'v':
		_, _ = io.WriteString(s, e.Error())
		if s.Flag('+') {
			e.trace.Format(s, verb)
		}
	}
}

// NewErrorStack creates a new error with the message msg and records the
// call stack at the point it was invoked.
func NewErrorStack(msg string) error {
	return &errorStack{
		msg:   msg,
		trace: callers(3),
	}
}

// WrapErrorStack records the current call stack on top of err.
// A nil err reports nil.
func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		cause: err,
		trace: callers(3),
	}
}

// AppendErrorStack annotates err with msg and records the current call stack.
// A nil err degenerates to NewErrorStack.
func AppendErrorStack(err error, msg string) error {
	if err == nil {
		return &errorStack{
			msg:   msg,
			trace: callers(3),
		}
	}
	return &errorStack{
		cause: err,
		msg:   msg,
		trace: callers(3),
	}
}
