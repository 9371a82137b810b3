package logger

import "log/slog"

const bufferKey = "buffer"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// SessionID records the edit session identifier under the key "session_id".
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// Pattern records a mask pattern under the key "mask".
func Pattern(pattern string) slog.Attr {
	return slog.String("mask", pattern)
}

// Buffer records masked field text under the key "buffer".
func Buffer(text string) slog.Attr {
	return slog.String(bufferKey, text)
}

// Intent records an edit intent under the key "intent".
func Intent(name string) slog.Attr {
	return slog.String("intent", name)
}

// State records an edit state under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Caret records a caret index under the key "caret".
func Caret(i int) slog.Attr {
	return slog.Int("caret", i)
}

// Rune records a typed character under the key "rune".
func Rune(r rune) slog.Attr {
	return slog.String("rune", string(r))
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
