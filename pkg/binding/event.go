package binding

// EventKind is a host event the binding understands.
type EventKind uint8

const (
	EventKey EventKind = iota + 1
	EventBackspace
	EventDeleteBackward
	EventPaste
	EventClick
	EventNavigate
	EventFocus
	EventBlur
	EventCompositionStart
	EventCompositionEnd
)

var eventNames = map[EventKind]string{
	EventKey:              "key",
	EventBackspace:        "backspace",
	EventDeleteBackward:   "delete_backward",
	EventPaste:            "paste",
	EventClick:            "click",
	EventNavigate:         "navigate",
	EventFocus:            "focus",
	EventBlur:             "blur",
	EventCompositionStart: "composition_start",
	EventCompositionEnd:   "composition_end",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a host event. Rune is set for EventKey, Text for EventPaste and
// EventCompositionEnd.
type Event struct {
	Kind EventKind
	Rune rune
	Text string
}

func Key(r rune) Event         { return Event{Kind: EventKey, Rune: r} }
func Paste(text string) Event  { return Event{Kind: EventPaste, Text: text} }
func Commit(text string) Event { return Event{Kind: EventCompositionEnd, Text: text} }
func Of(kind EventKind) Event  { return Event{Kind: kind} }
