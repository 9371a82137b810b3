package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputmask/pkg/config"
	"github.com/dmitrymomot/inputmask/pkg/mask"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// newFieldsCmd lists field definitions
func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List masked field definitions",
		Long: `List the fields of the definition file with their masks and options.

Examples:
  maskctl fields
  maskctl fields --fields ./forms/signup.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs, tokens, err := a.loadFields()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderFields(fs, tokens))
			return err
		},
	}
}

// renderFields renders fields as an aligned table.
func renderFields(fs config.Fields, tokens mask.Tokens) string {
	rows := [][]string{{"NAME", "MASK", "EMPTY", "OPTIONS"}}
	for _, f := range fs.Fields {
		empty := ""
		if e, err := mask.New(f.Mask, tokens); err == nil {
			empty = fmt.Sprintf("%q", e.Empty())
		}
		rows = append(rows, []string{f.Name, f.Mask, empty, fieldOptions(f)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		style := dimStyle
		if i == 0 {
			style = headerStyle
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = style.Width(widths[j] + 2).Render(cell)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func fieldOptions(f config.Field) string {
	var opts []string
	if f.Unmask {
		opts = append(opts, "unmask")
	}
	if f.ParseInt {
		opts = append(opts, "parse_int")
	}
	if f.HideOnEmpty {
		opts = append(opts, "hide_on_empty")
	}
	if f.EmitOnInit {
		opts = append(opts, "emit_on_init")
	}
	if f.Touch {
		opts = append(opts, "touch")
	}
	if len(opts) == 0 {
		return "-"
	}
	return strings.Join(opts, ",")
}
