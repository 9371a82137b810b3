package session

// State is the edit state of a session.
type State string

const (
	// StateIdle waits for the next edit intent.
	StateIdle State = "idle"
	// StateComposing is active between composition start and end.
	StateComposing State = "composing"
)

// Intent is an edit intent delivered by the host adapter.
type Intent string

const (
	IntentInsert           Intent = "insert"
	IntentBackspace        Intent = "backspace"
	IntentDeleteBackward   Intent = "delete_backward"
	IntentPaste            Intent = "paste"
	IntentReposition       Intent = "reposition"
	IntentFocus            Intent = "focus"
	IntentBlur             Intent = "blur"
	IntentCompositionStart Intent = "composition_start"
	IntentCompositionEnd   Intent = "composition_end"
)

// machine is the transition table of a single session. Sessions are driven
// from one event turn at a time, so it carries no lock.
type machine struct {
	current     State
	transitions map[State]map[Intent]State
}

func newMachine(initial State) *machine {
	return &machine{
		current:     initial,
		transitions: make(map[State]map[Intent]State),
	}
}

// editMachine builds the Idle/Composing machine. Every edit intent loops on
// its state; composition intents and blur move between the two.
func editMachine() *machine {
	m := newMachine(StateIdle)
	for _, in := range []Intent{
		IntentInsert,
		IntentBackspace,
		IntentDeleteBackward,
		IntentPaste,
		IntentReposition,
		IntentFocus,
	} {
		m.add(StateIdle, StateIdle, in)
		m.add(StateComposing, StateComposing, in)
	}
	m.add(StateIdle, StateIdle, IntentBlur)
	m.add(StateIdle, StateComposing, IntentCompositionStart)
	m.add(StateComposing, StateComposing, IntentCompositionStart)
	m.add(StateComposing, StateIdle, IntentCompositionEnd)
	// Losing focus abandons an unfinished composition.
	m.add(StateComposing, StateIdle, IntentBlur)
	return m
}

func (m *machine) add(from, to State, intent Intent) {
	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[Intent]State)
	}
	m.transitions[from][intent] = to
}

func (m *machine) can(intent Intent) bool {
	_, ok := m.transitions[m.current][intent]
	return ok
}

func (m *machine) fire(intent Intent) error {
	to, ok := m.transitions[m.current][intent]
	if !ok {
		return &ErrNoTransition{State: m.current, Intent: intent}
	}
	m.current = to
	return nil
}
