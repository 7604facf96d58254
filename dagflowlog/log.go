// Package dagflowlog wires up the zerolog backend used by package
// graph's structured logging, mirroring pkg/log's console-writer setup
// but dropping its KUBERNETES_SERVICE_HOST branch: this library has no
// deployment or environment concept to switch on (§6: no CLI, env
// vars, or persisted state), so there is exactly one output: a
// console writer to stdout.
package dagflowlog

import (
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

func init() {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
}

// New returns a zerolog.Logger writing human-readable, timestamped
// lines to stdout.
func New() *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	logger := zerolog.New(output).With().Timestamp().Logger()
	return &logger
}

// NewLogr adapts New's zerolog.Logger to the logr.Logger interface
// graph.WithLogger expects.
func NewLogr() logr.Logger {
	return zerologr.New(New())
}
