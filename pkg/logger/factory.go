package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
	marker rune
}

// preset is the level and format used for a deployment environment.
type preset struct {
	name   string
	level  slog.Level
	format Format
}

var (
	development = preset{name: "development", level: slog.LevelDebug, format: FormatText}
	production  = preset{name: "production", level: slog.LevelInfo, format: FormatJSON}

	presets = map[string]preset{
		"development": development,
		"dev":         development,
		"local":       development,
		"production":  production,
		"prod":        production,
	}
)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats: a misconfigured logger should prevent startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithEnvironment applies the level and format preset of env and tags records
// with the service and environment names. Unknown environments get the
// development preset.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		p, ok := presets[strings.ToLower(env)]
		if !ok {
			p = development
		}
		c.level = p.level
		c.format = p.format
		c.attrs = append(c.attrs, slog.String("env", p.name))
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// WithBufferMarker renders empty slots of "buffer" attributes as marker, so
// trailing placeholders stay visible in the output.
func WithBufferMarker(marker rune) Option {
	return func(c *config) { c.marker = marker }
}

// ParseLevel converts a level name such as "debug" or "WARN" into a slog.Level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// New creates a configured slog.Logger. Without options it writes JSON at
// info level to stderr, keeping stdout free for command output.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	if cfg.marker != 0 {
		handlerOpts.ReplaceAttr = markSlots(cfg.marker)
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(handler)
}

func markSlots(marker rune) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Key != bufferKey || a.Value.Kind() != slog.KindString {
			return a
		}
		return slog.String(a.Key, strings.ReplaceAll(a.Value.String(), " ", string(marker)))
	}
}
