package session

import (
	"log/slog"

	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/mask"
)

// Option configures a session during construction.
type Option func(*options)

type options struct {
	tokens mask.Tokens
	log    *slog.Logger
}

func defaultOptions() *options {
	return &options{
		tokens: mask.DefaultTokens(),
		log:    logger.Discard(),
	}
}

// WithTokens replaces the default token table.
func WithTokens(tokens mask.Tokens) Option {
	return func(o *options) {
		o.tokens = tokens
	}
}

// WithLogger sets the session logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
