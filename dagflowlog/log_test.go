package dagflowlog_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/birdayz/dagflow/dagflowlog"
)

func TestNewReturnsUsableLogger(t *testing.T) {
	logger := dagflowlog.New()
	assert.True(t, logger != nil)
}

func TestNewLogrDoesNotPanic(t *testing.T) {
	l := dagflowlog.NewLogr()
	l.V(1).Info("hello", "k", "v")
}
