package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	require.Equal(t, "err_stack_test.go", fmt.Sprintf("%s", initPC))
	require.Equal(t, "init", fmt.Sprintf("%n", initPC))
	require.Equal(t, "err_stack_test.go:14", fmt.Sprintf("%v", initPC))
	require.True(t, strings.HasSuffix(fmt.Sprintf("%n", initPC), "init"))

	require.Equal(t, "unknownFile", fmt.Sprintf("%s", Frame(0)))
	require.Equal(t, "unknownFunc", fmt.Sprintf("%n", Frame(0)))
	require.Equal(t, "0", fmt.Sprintf("%d", Frame(0)))
}

func TestFrameMarshalText(t *testing.T) {
	_bytes, err := initPC.MarshalText()
	require.NoError(t, err)
	require.Greater(t, len(_bytes), 0)
	require.True(t, strings.Contains(string(_bytes), "err_stack_test.go:14"))

	_bytes, err = Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(_bytes))
}

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("[test] boom")
	require.Error(t, err)
	require.Equal(t, "[test] boom", err.Error())
	verbose := fmt.Sprintf("%+v", err)
	assert.True(t, strings.Contains(verbose, "[test] boom"))
	assert.True(t, strings.Contains(verbose, "err_stack_test.go"))
}

func TestWrapErrorStack(t *testing.T) {
	require.Nil(t, WrapErrorStack(nil))

	sentinel := errors.New("[test] sentinel")
	err := WrapErrorStack(sentinel)
	require.Error(t, err)
	require.True(t, errors.Is(err, sentinel))
	require.Equal(t, sentinel.Error(), err.Error())
}

func TestAppendErrorStack(t *testing.T) {
	sentinel := errors.New("[test] sentinel")
	err := AppendErrorStack(sentinel, "in operation")
	require.Error(t, err)
	require.True(t, errors.Is(err, sentinel))
	require.Equal(t, "in operation: [test] sentinel", err.Error())

	err = AppendErrorStack(nil, "standalone")
	require.Error(t, err)
	require.Equal(t, "standalone", err.Error())
}
