package session

import "github.com/dmitrymomot/inputmask/pkg/mask"

// Target is the kind of host element a session is bound to.
type Target uint8

const (
	// TargetComponent is a component wrapping an input; it reports values
	// through a model callback and supports unmask and integer parsing.
	TargetComponent Target = iota
	// TargetNative is a bare input element that always reports its own text.
	TargetNative
)

func (t Target) String() string {
	if t == TargetNative {
		return "native"
	}
	return "component"
}

// Config is the immutable configuration of one masked field.
type Config struct {
	// Mask is the pattern, for example "(NNN) NNN-NNNN".
	Mask string `yaml:"mask" env:"MASK"`
	// Unmask reports the unmasked value to the model instead of the buffer.
	Unmask bool `yaml:"unmask" env:"UNMASK"`
	// ParseInt reports the value as an integer.
	ParseInt bool `yaml:"parse_int" env:"PARSE_INT"`
	// HideOnEmpty reports the empty value while no token is filled.
	HideOnEmpty bool `yaml:"hide_on_empty" env:"HIDE_ON_EMPTY"`
	// EmitOnInit reports the initial value when the session is created.
	EmitOnInit bool `yaml:"emit_on_init" env:"EMIT_ON_INIT"`
	// Touch marks a touch platform where buffer writes wait for the next turn.
	Touch bool `yaml:"touch" env:"TOUCH"`
	// Target is set by the binding layer.
	Target Target `yaml:"-" env:"-"`
}

// MaxIntDigits is the largest number of digit slots an integer mask may have.
// Every value of that many digits fits in an int64.
const MaxIntDigits = 18

// Validate checks cfg against tokens. It returns a *ConfigError.
func (cfg Config) Validate(tokens mask.Tokens) error {
	if cfg.Mask == "" {
		return newConfigError("mask", ErrMaskRequired)
	}
	if cfg.Target == TargetNative {
		if cfg.Unmask {
			return newConfigError("unmask", ErrUnsupportedTarget)
		}
		if cfg.ParseInt {
			return newConfigError("parse_int", ErrUnsupportedTarget)
		}
	}
	if cfg.ParseInt {
		digits := 0
		for _, sym := range cfg.Mask {
			if !tokens.IsToken(sym) {
				// Unmasked values drop literals; masked ones keep them.
				if cfg.Unmask {
					continue
				}
				return newConfigError("parse_int", ErrParseIntMask)
			}
			if !tokens.NumericOnly(sym) {
				return newConfigError("parse_int", ErrParseIntMask)
			}
			digits++
		}
		if digits > MaxIntDigits {
			return newConfigError("parse_int", ErrParseIntMask)
		}
	}
	return nil
}
