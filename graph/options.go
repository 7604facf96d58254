package graph

import "github.com/go-logr/logr"

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithLogger installs a structured logger. The default is logr.Discard(),
// matching the teacher lineage's own default (see stream.go's WithLogr /
// logr.Discard()).
func WithLogger(log logr.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// WithName sets a display name used to scope the logger (via
// logr.Logger.WithName) and in diagnostic messages. The scoping is
// applied once, after all options have run, so it composes regardless of
// option order.
func WithName(name string) Option {
	return func(p *Pipeline) {
		p.name = name
	}
}
