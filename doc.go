// Package inputmask formats text with input masks and keeps masked text
// fields consistent while they are edited.
//
// A mask is a pattern of token symbols and literals. The default tokens are:
//
//	N  digit
//	S  letter
//	A  letter or digit
//	C  any non-space character
//	X  any character
//
// Every other rune is a literal that is placed in the output as is. The
// helpers in this package apply masks with the default tokens:
//
//	inputmask.Format("5551234567", "(NNN) NNN-NNNN")   // "(555) 123-4567"
//	inputmask.Unformat("(555) 123-4567", "(NNN) NNN-NNNN") // "5551234567"
//
// The building blocks live in sub-packages:
//
//   - pkg/mask: the transform engine and token tables.
//   - pkg/session: the edit controller of one masked field.
//   - pkg/binding: attaching sessions to host UI fields.
//   - pkg/teainput: a masked input for bubbletea programs.
//   - pkg/config: settings and YAML field definitions.
//
// The maskctl command in cmd/maskctl exposes formatting on the command line
// and an interactive form for trying masks.
package inputmask
