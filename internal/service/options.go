package service

import (
	"log/slog"
	"time"
)

type options struct {
	now    func() time.Time
	logger *slog.Logger
	tables *Tables
}

type Option func(*options)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithTables(tables *Tables) Option {
	return func(o *options) {
		o.tables = tables
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:    time.Now,
		logger: slog.Default(),
		tables: DefaultTables(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
