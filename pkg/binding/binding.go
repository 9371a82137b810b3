package binding

import (
	"log/slog"

	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/session"
)

// Field is a host text-entry element.
type Field interface {
	Value() string
	SetValue(string)
	Caret() int
	SetCaret(int)
}

// Host is a host component whose markup nests an input field.
type Host interface {
	Input() (Field, bool)
}

// Scheduler runs deferred writes on a later turn of the host event loop.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// Immediate runs deferred writes right away. It suits hosts without a native
// caret placement of their own.
var Immediate Scheduler = SchedulerFunc(func(fn func()) { fn() })

// Binding attaches one session to one host field.
type Binding struct {
	field  Field
	target session.Target
	emit   session.Emitter
	sched  Scheduler
	opts   []session.Option
	log    *slog.Logger

	session *session.Session
	bound   bool
}

// Option configures a binding.
type Option func(*Binding)

// WithScheduler sets the scheduler used for deferred writes. Nil is ignored.
func WithScheduler(s Scheduler) Option {
	return func(b *Binding) {
		if s != nil {
			b.sched = s
		}
	}
}

// WithSessionOptions passes options to every session the binding creates.
func WithSessionOptions(opts ...session.Option) Option {
	return func(b *Binding) {
		b.opts = append(b.opts, opts...)
	}
}

// WithLogger sets the binding logger. It is also handed to the sessions.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binding) {
		if l != nil {
			b.log = l
		}
	}
}

// Bind resolves the input field of host, creates a session for it and writes
// the initial buffer. A host implementing Host is a component; a host that is
// only a Field is a native input.
func Bind(host any, cfg session.Config, emit session.Emitter, opts ...Option) (*Binding, error) {
	b := &Binding{
		emit:  emit,
		sched: Immediate,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}

	field, target, err := resolve(host)
	if err != nil {
		return nil, err
	}
	b.field = field
	b.target = target

	if err := b.start(cfg); err != nil {
		return nil, err
	}
	b.bound = true
	b.write(b.session.Initial())
	return b, nil
}

func resolve(host any) (Field, session.Target, error) {
	if h, ok := host.(Host); ok {
		f, ok := h.Input()
		if !ok || f == nil {
			return nil, 0, missingInput()
		}
		return f, session.TargetComponent, nil
	}
	if f, ok := host.(Field); ok && f != nil {
		return f, session.TargetNative, nil
	}
	return nil, 0, missingInput()
}

// missingInput reports a host without an input as a configuration error, so
// session.IsConfigError covers every bind-time failure.
func missingInput() error {
	return &session.ConfigError{Field: "input", Err: ErrMissingInput}
}

func (b *Binding) start(cfg session.Config) error {
	cfg.Target = b.target
	opts := append([]session.Option{session.WithLogger(b.log)}, b.opts...)
	s, err := session.New(cfg, b.field.Value(), b.emit, opts...)
	if err != nil {
		return err
	}
	b.session = s
	return nil
}

// Update rebuilds the session for a new configuration, keeping the current
// field text.
func (b *Binding) Update(cfg session.Config) error {
	if !b.bound {
		return ErrUnbound
	}
	if err := b.start(cfg); err != nil {
		return err
	}
	b.write(b.session.Initial())
	return nil
}

// Unbind detaches the binding. Later events and pending deferred writes are
// dropped.
func (b *Binding) Unbind() {
	b.bound = false
}

// Bound reports whether the binding is attached.
func (b *Binding) Bound() bool { return b.bound }

// Session returns the active session.
func (b *Binding) Session() *session.Session { return b.session }

// Field returns the bound field.
func (b *Binding) Field() Field { return b.field }

// Handle dispatches a host event to the session and writes the result back
// into the field. It reports false for unknown events and once unbound.
func (b *Binding) Handle(ev Event) bool {
	if !b.bound {
		return false
	}

	s := b.session
	in := session.Input{Text: b.field.Value(), Caret: b.field.Caret()}

	var e session.Edit
	switch ev.Kind {
	case EventKey:
		e = s.Insert(in, ev.Rune)
	case EventBackspace:
		e = s.Backspace(in)
	case EventDeleteBackward:
		e = s.DeleteBackward(in)
	case EventPaste:
		e = s.Paste(in, ev.Text)
	case EventClick, EventNavigate:
		e = s.Reposition(in)
	case EventFocus:
		e = s.Focus(in)
	case EventBlur:
		e = s.Blur(in)
	case EventCompositionStart:
		e = s.CompositionStart(in)
	case EventCompositionEnd:
		e = s.CompositionEnd(in, ev.Text)
	default:
		return false
	}

	b.log.Debug("event handled",
		logger.Intent(ev.Kind.String()),
		logger.Buffer(e.Text),
		logger.Caret(e.Caret),
		slog.Bool("deferred", e.Deferred),
	)
	b.write(e)
	return true
}

func (b *Binding) write(e session.Edit) {
	if e.Suppressed {
		return
	}
	apply := func() {
		if !b.bound {
			return
		}
		b.field.SetValue(e.Text)
		b.field.SetCaret(e.Caret)
	}
	if e.Deferred {
		b.sched.Defer(apply)
		return
	}
	apply()
}
