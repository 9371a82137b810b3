package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputmask/pkg/config"
	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/session"
	"github.com/dmitrymomot/inputmask/pkg/teainput"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// newDemoCmd runs an interactive form
func newDemoCmd(a *app) *cobra.Command {
	var masks []string
	cmd := &cobra.Command{
		Use:   "demo [field...]",
		Short: "Try masked fields in the terminal",
		Long: `Open an interactive form with masked inputs.

The form shows the named fields of the definition file, every field when
no name is given, or one input per --mask. The reported values are printed
when the form is submitted.

Keys:
  tab, down        next field
  shift+tab, up    previous field
  enter            next field, submit on the last one
  esc, ctrl+c      quit

Examples:
  maskctl demo
  maskctl demo phone year
  maskctl demo --mask "(NNN) NNN-NNNN" --mask "NN/NN/NNNN"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, tokens, err := a.demoFields(masks, args)
			if err != nil {
				return err
			}

			f, err := newForm(fields, tokens, a.settings.Touch, a.log)
			if err != nil {
				return err
			}
			defer f.close()

			p := tea.NewProgram(f,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run form: %w", err)
			}
			if !f.submitted {
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.summary())
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&masks, "mask", "m", nil, "mask pattern of an ad-hoc field (repeatable)")
	return cmd
}

// demoFields selects the fields shown by the form.
func (a *app) demoFields(masks, names []string) ([]config.Field, mask.Tokens, error) {
	if len(masks) > 0 {
		if len(names) > 0 {
			return nil, mask.Tokens{}, fmt.Errorf("field names cannot be combined with --mask")
		}
		fields := make([]config.Field, len(masks))
		for i, m := range masks {
			fields[i] = config.Field{
				Name:   fmt.Sprintf("field%d", i+1),
				Config: session.Config{Mask: m},
			}
		}
		return fields, mask.DefaultTokens(), nil
	}

	fs, tokens, err := a.loadFields()
	if err != nil {
		return nil, mask.Tokens{}, err
	}
	if len(names) == 0 {
		return fs.Fields, tokens, nil
	}
	fields := make([]config.Field, 0, len(names))
	for _, name := range names {
		f, ok := fs.Lookup(name)
		if !ok {
			return nil, mask.Tokens{}, fmt.Errorf("field %q is not defined in %s", name, a.settings.FieldsFile)
		}
		fields = append(fields, f)
	}
	return fields, tokens, nil
}

// form is the bubbletea model of the demo command.
type form struct {
	names     []string
	inputs    []*teainput.Model
	focus     int
	submitted bool
}

func newForm(fields []config.Field, tokens mask.Tokens, touch bool, log *slog.Logger) (*form, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to show")
	}
	f := &form{}
	for _, field := range fields {
		cfg := field.Config
		cfg.Touch = cfg.Touch || touch

		label := field.Label
		if label == "" {
			label = field.Name
		}
		in, err := teainput.New(cfg,
			teainput.WithLabel(label),
			teainput.WithPlaceholder(field.Placeholder),
			teainput.WithInitial(field.Initial),
			teainput.WithTokens(tokens),
			teainput.WithLogger(log.With(logger.Component("demo"))),
		)
		if err != nil {
			f.close()
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		f.names = append(f.names, field.Name)
		f.inputs = append(f.inputs, in)
	}
	return f, nil
}

func (f *form) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.inputs)+1)
	for _, in := range f.inputs {
		cmds = append(cmds, in.Init())
	}
	cmds = append(cmds, f.inputs[f.focus].Focus())
	return tea.Batch(cmds...)
}

func (f *form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return f, tea.Quit
		case "tab", "down":
			return f, f.move(1)
		case "shift+tab", "up":
			return f, f.move(-1)
		case "enter":
			if f.focus == len(f.inputs)-1 {
				f.submitted = true
				return f, tea.Sequence(f.inputs[f.focus].Blur(), tea.Quit)
			}
			return f, f.move(1)
		}
	}

	cmds := make([]tea.Cmd, 0, len(f.inputs))
	for _, in := range f.inputs {
		cmds = append(cmds, in.Update(msg))
	}
	return f, tea.Batch(cmds...)
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	n := len(f.inputs)
	blur := f.inputs[f.focus].Blur()
	f.focus = ((f.focus+delta)%n + n) % n
	return tea.Batch(blur, f.inputs[f.focus].Focus())
}

func (f *form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("maskctl"))
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(in.Value().String()))
		b.WriteByte('\n')
	}
	b.WriteString(footerStyle.Render("tab next • shift+tab prev • enter submit • esc quit"))
	b.WriteByte('\n')
	return b.String()
}

// summary lists the reported value of every field.
func (f *form) summary() string {
	var b strings.Builder
	for i, in := range f.inputs {
		fmt.Fprintf(&b, "%s=%s\n", f.names[i], in.Value())
	}
	return b.String()
}

func (f *form) close() {
	for _, in := range f.inputs {
		in.Close()
	}
}
