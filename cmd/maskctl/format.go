package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/mask"
)

var errNoMask = errors.New("one of --mask or --field is required")

// maskFlags selects the mask of format and unformat.
type maskFlags struct {
	pattern string
	field   string
}

func (f *maskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pattern, "mask", "m", "", "mask pattern")
	cmd.Flags().StringVarP(&f.field, "field", "f", "", "field name from the definition file")
	cmd.MarkFlagsMutuallyExclusive("mask", "field")
}

// engine builds the engine selected by --mask or --field.
func (f *maskFlags) engine(a *app) (*mask.Engine, error) {
	switch {
	case f.pattern != "":
		return mask.New(f.pattern, mask.DefaultTokens())
	case f.field != "":
		fs, tokens, err := a.loadFields()
		if err != nil {
			return nil, err
		}
		field, ok := fs.Lookup(f.field)
		if !ok {
			return nil, fmt.Errorf("field %q is not defined in %s", f.field, a.settings.FieldsFile)
		}
		return mask.New(field.Mask, tokens)
	}
	return nil, errNoMask
}

// newFormatCmd masks raw values
func newFormatCmd(a *app) *cobra.Command {
	var flags maskFlags
	cmd := &cobra.Command{
		Use:   "format [value...]",
		Short: "Mask raw values",
		Long: `Mask raw values with a pattern or a named field.

Values are taken from the arguments, or read line by line from stdin when
no arguments are given.

Examples:
  # Format a phone number
  maskctl format --mask "(NNN) NNN-NNNN" 5551234567

  # Format with a field from the definition file
  maskctl format --field phone 5551234567

  # Format every line of a file
  maskctl format --mask "NN/NN/NNNN" < dates.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := flags.engine(a)
			if err != nil {
				return err
			}
			a.log.Debug("formatting", logger.Pattern(engine.Pattern()))

			return eachValue(cmd, args, engine.Mask)
		},
	}
	flags.register(cmd)
	return cmd
}

// newUnformatCmd recovers raw values from masked text
func newUnformatCmd(a *app) *cobra.Command {
	var (
		flags maskFlags
		asInt bool
	)
	cmd := &cobra.Command{
		Use:   "unformat [text...]",
		Short: "Recover raw values from masked text",
		Long: `Recover raw values from masked text.

Text shaped like the mask is read by position; anything else is scanned
as free text. With --int the leading integer of the value is printed, or
NaN when there is none.

Examples:
  maskctl unformat --mask "NN/NN/NNNN" "12/31/2024"
  maskctl unformat --mask "NNN-NNN" --int "123-45 "`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := flags.engine(a)
			if err != nil {
				return err
			}
			a.log.Debug("unformatting", logger.Pattern(engine.Pattern()), slog.Bool("int", asInt))

			return eachValue(cmd, args, func(text string) string {
				layout := engine.Conforms(text)
				if !asInt {
					return engine.Unmask(text, layout)
				}
				n, ok := engine.UnmaskInt(text, layout)
				if !ok {
					return "NaN"
				}
				return strconv.FormatInt(n, 10)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asInt, "int", false, "print the value as an integer")
	return cmd
}

// eachValue applies fn to every argument, or to every stdin line when there
// are none, and prints one result per line.
func eachValue(cmd *cobra.Command, args []string, fn func(string) string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, arg := range args {
			if _, err := fmt.Fprintln(out, fn(arg)); err != nil {
				return err
			}
		}
		return nil
	}
	return eachLine(cmd.InOrStdin(), out, fn)
}

func eachLine(in io.Reader, out io.Writer, fn func(string) string) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, fn(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	return nil
}
