package session

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/mask"
)

// Input is the state of the host field at the time of an event.
type Input struct {
	Text  string
	Caret int
}

// Edit is the result of an intent: the buffer and caret to write back into the
// field and the value reported to the model, if any.
type Edit struct {
	Text  string
	Caret int
	// Deferred asks the adapter to write on the next scheduling turn, after
	// the host has finished its own handling of the event.
	Deferred bool
	// Suppressed means the field must not be written at all.
	Suppressed bool
	// Emitted is set when Value was passed to the emitter.
	Emitted bool
	Value   Value
}

// Session is the edit controller of one masked field. It is not safe for
// concurrent use; each field owns exactly one session and drives it from its
// event loop.
type Session struct {
	id      string
	cfg     Config
	engine  *mask.Engine
	emit    Emitter
	log     *slog.Logger
	machine *machine

	buffer   string
	caret    int
	composed []rune
	// base is the field state when the composition started.
	base    Input
	initial Edit
	last    Value
}

// New validates cfg and creates a session for a field whose current text is
// initial. Configuration problems are reported as *ConfigError.
func New(cfg Config, initial string, emit Emitter, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(o.tokens); err != nil {
		return nil, err
	}

	engine, err := mask.New(cfg.Mask, o.tokens)
	if err != nil {
		return nil, newConfigError("mask", err)
	}

	if emit == nil {
		emit = func(Value) {}
	}

	id := uuid.NewString()
	s := &Session{
		id:      id,
		cfg:     cfg,
		engine:  engine,
		emit:    emit,
		log:     o.log.With(logger.SessionID(id), logger.Pattern(cfg.Mask)),
		machine: editMachine(),
	}

	s.buffer = engine.Normalize(initial)
	s.initial = Edit{Text: s.buffer, Caret: 0, Deferred: true}
	if cfg.EmitOnInit {
		s.initial.Value = s.formatAndEmit()
		s.initial.Emitted = true
	}

	s.log.Debug("session created",
		slog.String("target", cfg.Target.String()),
		slog.Bool("unmask", cfg.Unmask),
		slog.Bool("parse_int", cfg.ParseInt),
	)
	return s, nil
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string { return s.id }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Engine returns the transform engine of the session.
func (s *Session) Engine() *mask.Engine { return s.engine }

// Buffer returns the last known masked buffer.
func (s *Session) Buffer() string { return s.buffer }

// Caret returns the last caret index written by the session.
func (s *Session) Caret() int { return s.caret }

// State returns the current edit state.
func (s *Session) State() State { return s.machine.current }

// Value returns the last value reported to the model.
func (s *Session) Value() Value { return s.last }

// Initial returns the write produced at construction time.
func (s *Session) Initial() Edit { return s.initial }

// Insert types r into the next fillable token position. A rune the token does
// not accept is dropped and the caret stays where it was.
func (s *Session) Insert(in Input, r rune) Edit {
	s.fire(IntentInsert)

	buf := s.snapshot(in.Text)
	idx, ok := s.engine.NextFillable(buf)
	if ok && s.engine.Accepts(idx, r) {
		if s.composing() {
			s.composed = append(s.composed, r)
		}
		return s.commit(s.engine.ReplaceAt(buf, idx, r), idx+1, true, s.deferEdits())
	}

	s.log.Debug("rune rejected", logger.Rune(r), logger.Caret(in.Caret))
	if s.composing() {
		return Edit{Text: s.buffer, Caret: s.caret, Suppressed: true}
	}
	return s.commit(buf, in.Caret, true, s.deferEdits())
}

// Backspace clears the token before the caret. When a literal sits before the
// caret, the last filled token before it is cleared instead, so separators are
// jumped over.
func (s *Session) Backspace(in Input) Edit {
	s.fire(IntentBackspace)

	buf, caret := s.erase(s.snapshot(in.Text), s.clamp(in.Caret))
	return s.commit(buf, caret, true, s.deferEdits())
}

// DeleteBackward handles a backward delete reported by an input event whose
// caret position cannot be trusted. When the regular backspace leaves the
// buffer unchanged, the last filled rune of the value is dropped instead.
func (s *Session) DeleteBackward(in Input) Edit {
	s.fire(IntentDeleteBackward)

	before := s.snapshot(in.Text)
	buf, caret := s.erase(before, s.clamp(in.Caret))
	if buf == before {
		buf = s.popLast(before)
		caret = s.engine.NextFillableIndex(buf)
		if n := len(s.composed); n > 0 {
			s.composed = s.composed[:n-1]
		}
	}
	return s.commit(buf, caret, true, s.deferEdits())
}

// Paste fills the empty token positions from the next fillable one with the
// runes of text, skipping runes that do not fit.
func (s *Session) Paste(in Input, text string) Edit {
	s.fire(IntentPaste)
	return s.paste(in, text)
}

// Reposition handles a click or arrow key. The caret goes to the next fillable
// position; the requested position is only used when the buffer is full.
func (s *Session) Reposition(in Input) Edit {
	s.fire(IntentReposition)
	return s.refocus(in)
}

// Focus behaves like Reposition.
func (s *Session) Focus(in Input) Edit {
	s.fire(IntentFocus)
	return s.refocus(in)
}

// Blur rewrites the field in canonical masked form and abandons any
// unfinished composition.
func (s *Session) Blur(in Input) Edit {
	s.fire(IntentBlur)
	s.composed = nil

	buf := s.refresh(in.Text)
	return s.commit(buf, in.Caret, buf != s.buffer, s.cfg.Touch)
}

// CompositionStart enters the composing state. Nothing is written.
func (s *Session) CompositionStart(in Input) Edit {
	s.fire(IntentCompositionStart)
	s.composed = nil
	s.buffer = s.snapshot(in.Text)
	s.base = Input{Text: s.buffer, Caret: s.clamp(in.Caret)}
	return Edit{Text: s.buffer, Caret: s.base.Caret, Suppressed: true}
}

// CompositionEnd commits composed text. Runes already applied while composing
// are not applied twice. Without an active composition data is pasted.
func (s *Session) CompositionEnd(in Input, data string) Edit {
	if !s.machine.can(IntentCompositionEnd) {
		return s.Paste(in, data)
	}
	s.fire(IntentCompositionEnd)

	rest := []rune(data)
	if !hasPrefix(rest, s.composed) {
		// The committed text replaces what was typed while composing.
		s.composed = nil
		return s.paste(s.base, data)
	}
	rest = rest[len(s.composed):]
	s.composed = nil

	if len(rest) == 0 {
		buf := s.snapshot(in.Text)
		return s.commit(buf, s.engine.NextFillableIndex(buf), true, s.deferEdits())
	}
	return s.paste(in, string(rest))
}

func (s *Session) paste(in Input, text string) Edit {
	buf, end := s.engine.Fill(s.snapshot(in.Text), text)
	caret := in.Caret
	if end >= 0 {
		caret = s.engine.NextFillableIndex(buf)
	}
	return s.commit(buf, caret, true, s.deferEdits())
}

func (s *Session) refocus(in Input) Edit {
	buf := s.refresh(in.Text)
	caret, ok := s.engine.NextFillable(buf)
	if !ok {
		caret = in.Caret
	}
	return s.commit(buf, caret, buf != s.buffer, s.cfg.Touch)
}

// erase applies backspace semantics to buf.
func (s *Session) erase(buf string, caret int) (string, int) {
	if caret == 0 {
		return buf, 0
	}
	if s.engine.IsToken(caret - 1) {
		return s.engine.ReplaceAt(buf, caret-1, mask.Placeholder), caret - 1
	}
	if i, ok := s.engine.LastFilled(buf, caret); ok {
		return s.engine.ReplaceAt(buf, i, mask.Placeholder), i
	}
	return buf, caret
}

// popLast drops the last rune of the unmasked value and masks the rest.
func (s *Session) popLast(buf string) string {
	raw := []rune(s.engine.Unmask(buf, true))
	if len(raw) == 0 {
		return buf
	}
	return s.engine.Mask(string(raw[:len(raw)-1]))
}

// snapshot turns the field text into a buffer. With integer parsing the text
// is always masked again so the engine sees comparable input.
func (s *Session) snapshot(text string) string {
	if s.cfg.ParseInt {
		return s.engine.Mask(text)
	}
	return s.engine.Normalize(text)
}

// refresh returns text in canonical masked form.
func (s *Session) refresh(text string) string {
	return s.engine.Mask(s.engine.Unmask(text, s.engine.Conforms(text)))
}

func (s *Session) commit(buf string, caret int, emit, deferred bool) Edit {
	s.buffer = buf
	s.caret = s.clamp(caret)

	e := Edit{Text: s.buffer, Caret: s.caret, Deferred: deferred}
	if emit {
		e.Value = s.formatAndEmit()
		e.Emitted = true
	}
	return e
}

// formatAndEmit computes the model value of the current buffer and reports it.
func (s *Session) formatAndEmit() Value {
	v := s.modelValue()
	s.last = v
	s.emit(v)
	return v
}

func (s *Session) modelValue() Value {
	buf := s.buffer
	if s.cfg.HideOnEmpty && buf == s.engine.Empty() {
		return EmptyValue()
	}
	if s.cfg.ParseInt {
		var (
			n  int64
			ok bool
		)
		if s.cfg.Unmask {
			n, ok = s.engine.UnmaskInt(buf, true)
		} else {
			n, ok = mask.ParseInt(buf)
		}
		if !ok {
			return EmptyValue()
		}
		return IntValue(n)
	}
	if s.cfg.Unmask {
		return TextValue(s.engine.Unmask(buf, true))
	}
	if s.cfg.Target == TargetNative {
		return FieldValue(buf)
	}
	return TextValue(buf)
}

func (s *Session) fire(intent Intent) {
	from := s.machine.current
	if err := s.machine.fire(intent); err != nil {
		s.log.Debug("intent ignored", logger.Intent(string(intent)), logger.Error(err))
		return
	}
	if from != s.machine.current {
		s.log.Debug("state changed",
			logger.Intent(string(intent)),
			logger.State(string(s.machine.current)),
		)
	}
}

func (s *Session) composing() bool {
	return s.machine.current == StateComposing
}

// deferEdits reports whether edit writes must wait for the next turn: touch
// platforms settle the caret late, and with unmask the model value and the
// visible buffer diverge.
func (s *Session) deferEdits() bool {
	return s.cfg.Touch || s.cfg.Unmask
}

func (s *Session) clamp(caret int) int {
	if caret < 0 {
		return 0
	}
	if n := s.engine.Len(); caret > n {
		return n
	}
	return caret
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
