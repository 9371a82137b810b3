// Package session implements the edit session controller of a masked field.
//
// A Session owns the last known masked buffer of one field and turns edit
// intents (typed runes, backspace, paste, clicks, focus changes and IME
// composition) into buffer mutations through a mask.Engine. Every intent
// returns an Edit describing the text and caret the host should write back,
// and most intents report the model value to the Emitter given to New.
//
// # States
//
// A session is either Idle or Composing. While composing, a rune the target
// token does not accept is suppressed entirely, and runes that were accepted
// during the composition are not applied a second time when the composition
// ends. Blur abandons an unfinished composition.
//
// # Emission
//
// The reported Value follows a fixed policy:
//
//   - HideOnEmpty with an empty buffer reports the empty value.
//   - ParseInt reports an integer, or the empty value when the text is not a
//     number.
//   - Unmask reports the unmasked text.
//   - A native target reports KindField, leaving it to the adapter to surface
//     the field itself.
//   - Otherwise the masked buffer is reported.
//
// # Usage
//
//	s, err := session.New(session.Config{Mask: "NN/NN/NNNN", Unmask: true}, "", func(v session.Value) {
//	    model.Date = v.Text()
//	})
//	if err != nil {
//	    return err // *session.ConfigError
//	}
//
//	e := s.Insert(session.Input{Text: field.Value(), Caret: field.Caret()}, '1')
//	field.SetValue(e.Text)
//	field.SetCaret(e.Caret)
//
// # Error handling
//
// New is the only operation that fails. It returns a *ConfigError wrapping
// ErrMaskRequired, ErrParseIntMask or ErrUnsupportedTarget. Intents never
// fail: input that does not fit the mask is dropped or yields the empty value.
//
// # Concurrency
//
// Sessions are driven from a single event loop and hold no locks. Deferred
// writes are requested through Edit.Deferred and scheduled by the adapter.
package session
