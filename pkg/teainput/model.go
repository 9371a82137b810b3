package teainput

import (
	"log/slog"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/dmitrymomot/inputmask/pkg/binding"
	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/session"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("51")).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231"))
)

// writeMsg delivers deferred writes of one field on the next update turn.
type writeMsg struct {
	id string
}

// Model is a masked text input component for bubbletea programs.
// It is used through a pointer and embedded in a parent model.
type Model struct {
	id          string
	label       string
	placeholder string
	input       *textinput.Model
	binding     *binding.Binding
	pending     []func()
	value       session.Value

	initial  string
	tokens   *mask.Tokens
	log      *slog.Logger
	onChange func(session.Value)
}

// Option configures a Model.
type Option func(*Model)

// WithLabel sets the label rendered before the input.
func WithLabel(label string) Option {
	return func(m *Model) { m.label = label }
}

// WithPlaceholder sets the placeholder shown while no mask slot is filled.
func WithPlaceholder(placeholder string) Option {
	return func(m *Model) { m.placeholder = placeholder }
}

// WithInitial sets the initial text of the input.
func WithInitial(text string) Option {
	return func(m *Model) { m.initial = text }
}

// WithTokens replaces the default token table.
func WithTokens(tokens mask.Tokens) Option {
	return func(m *Model) { m.tokens = &tokens }
}

// WithLogger sets the logger for the binding and its sessions.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithOnChange registers a callback for every reported value.
func WithOnChange(fn func(session.Value)) Option {
	return func(m *Model) { m.onChange = fn }
}

// New creates a masked input. Configuration errors are returned as reported by
// the session package.
func New(cfg session.Config, opts ...Option) (*Model, error) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = utf8.RuneCountInString(cfg.Mask)
	ti.TextStyle = valueStyle

	m := &Model{
		id:    uuid.NewString(),
		input: &ti,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(logger.Component("teainput"))
	m.input.SetValue(m.initial)

	sessionOpts := []session.Option{}
	if m.tokens != nil {
		sessionOpts = append(sessionOpts, session.WithTokens(*m.tokens))
	}

	b, err := binding.Bind(component{input: field{m.input}}, cfg, m.emit,
		binding.WithScheduler(binding.SchedulerFunc(m.schedule)),
		binding.WithSessionOptions(sessionOpts...),
		binding.WithLogger(m.log),
	)
	if err != nil {
		return nil, err
	}
	m.binding = b
	return m, nil
}

// Init flushes the initial write.
func (m *Model) Init() tea.Cmd {
	return m.scheduled()
}

// Update handles key messages while focused and deferred writes. Other
// messages go to the wrapped textinput, which drives cursor blinking.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case writeMsg:
		if msg.id == m.id {
			m.flush()
		}
		return nil
	case tea.KeyMsg:
		if !m.input.Focused() {
			return nil
		}
		ev, ok := eventFor(msg)
		if !ok {
			return nil
		}
		// A new key ends the previous turn.
		m.flush()
		if ev.Kind != binding.EventNavigate {
			m.binding.Handle(ev)
			return m.scheduled()
		}
		// Let the textinput move the cursor first, then reposition.
		var cmd tea.Cmd
		*m.input, cmd = m.input.Update(msg)
		m.binding.Handle(ev)
		return tea.Batch(cmd, m.scheduled())
	}

	var cmd tea.Cmd
	*m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the label and the input. A buffer with every slot blank is
// rendered as the placeholder, if one is set.
func (m *Model) View() string {
	view := m.input.View()
	if m.placeholder != "" && m.Session().Engine().IsEmpty(m.Text()) {
		view = m.input.PlaceholderStyle.Render(m.placeholder)
	}
	if m.label == "" {
		return view
	}
	style := labelStyle
	if m.input.Focused() {
		style = focusedLabelStyle
	}
	return style.Render(m.label) + " " + view
}

// Focus focuses the input and moves the caret to the next fillable position.
func (m *Model) Focus() tea.Cmd {
	m.flush()
	blink := m.input.Focus()
	m.binding.Handle(binding.Of(binding.EventFocus))
	return tea.Batch(blink, m.scheduled())
}

// Blur removes focus and rewrites the input in canonical masked form.
func (m *Model) Blur() tea.Cmd {
	m.flush()
	m.input.Blur()
	m.binding.Handle(binding.Of(binding.EventBlur))
	return m.scheduled()
}

// Focused reports whether the input has focus.
func (m *Model) Focused() bool { return m.input.Focused() }

// Value returns the last value reported by the session.
func (m *Model) Value() session.Value { return m.value }

// Text returns the text currently shown in the input.
func (m *Model) Text() string { return m.input.Value() }

// Caret returns the caret position of the input.
func (m *Model) Caret() int { return m.input.Position() }

// Label returns the input label.
func (m *Model) Label() string { return m.label }

// Session returns the edit session behind the input.
func (m *Model) Session() *session.Session { return m.binding.Session() }

// Close detaches the input from its session.
func (m *Model) Close() {
	m.binding.Unbind()
	m.pending = nil
}

func (m *Model) emit(v session.Value) {
	m.value = v
	if m.onChange != nil {
		m.onChange(v)
	}
}

func (m *Model) schedule(fn func()) {
	m.pending = append(m.pending, fn)
}

// scheduled returns a command delivering pending writes on the next turn.
func (m *Model) scheduled() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	id := m.id
	return func() tea.Msg { return writeMsg{id: id} }
}

func (m *Model) flush() {
	pending := m.pending
	m.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// eventFor maps a key press to a binding event.
func eventFor(msg tea.KeyMsg) (binding.Event, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) > 1 {
			return binding.Paste(string(msg.Runes)), true
		}
		if len(msg.Runes) == 1 {
			return binding.Key(msg.Runes[0]), true
		}
	case tea.KeySpace:
		return binding.Key(' '), true
	case tea.KeyBackspace:
		return binding.Of(binding.EventBackspace), true
	case tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd, tea.KeyCtrlA, tea.KeyCtrlE:
		return binding.Of(binding.EventNavigate), true
	}
	return binding.Event{}, false
}

// field exposes a textinput as a binding.Field.
type field struct {
	m *textinput.Model
}

func (f field) Value() string     { return f.m.Value() }
func (f field) SetValue(s string) { f.m.SetValue(s) }
func (f field) Caret() int        { return f.m.Position() }
func (f field) SetCaret(i int)    { f.m.SetCursor(i) }

// component makes the textinput a component host so unmask and integer
// parsing stay available.
type component struct {
	input field
}

func (c component) Input() (binding.Field, bool) { return c.input, true }
