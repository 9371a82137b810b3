// Package binding attaches edit sessions to host UI fields.
//
// A host UI layer implements Field for its text-entry element (and Host when
// the element is a component wrapping an input), translates its native events
// into Event values and calls Binding.Handle. The binding runs the matching
// session intent and writes the buffer and caret back into the field.
//
// Bind, Update and Unbind map to the attach, configuration change and detach
// hooks every UI toolkit offers:
//
//	b, err := binding.Bind(input, session.Config{Mask: "(NNN) NNN-NNNN"}, onChange,
//	    binding.WithScheduler(binding.SchedulerFunc(loop.Next)),
//	)
//	if err != nil {
//	    return err
//	}
//	defer b.Unbind()
//
//	b.Handle(binding.Key('5'))
//
// Writes flagged as deferred by the session go through the Scheduler so they
// land after the host has finished its own handling of the event.
package binding
