// Package teainput provides a masked text input for bubbletea programs.
//
// Model wraps a bubbles textinput and routes key presses through an edit
// session, so the input only ever shows text shaped by its mask:
//
//	phone, err := teainput.New(session.Config{Mask: "(NNN) NNN-NNNN"},
//	    teainput.WithLabel("Phone"),
//	)
//	if err != nil {
//	    return err
//	}
//
// The parent model forwards messages to Update and returns the commands it
// produces. Writes the session asks to defer are delivered by those commands
// on the next update turn.
package teainput
