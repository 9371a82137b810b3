package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/session"
)

// Field is a named masked field definition.
type Field struct {
	Name           string `yaml:"name"`
	Label          string `yaml:"label"`
	Placeholder    string `yaml:"placeholder"`
	Initial        string `yaml:"initial"`
	session.Config `yaml:",inline"`
}

// Fields is a decoded field definition file.
//
//	tokens:
//	  H: alnum
//	fields:
//	  - name: phone
//	    mask: "(NNN) NNN-NNNN"
//	  - name: year
//	    mask: "NNNN"
//	    parse_int: true
type Fields struct {
	// Tokens adds or replaces token symbols. Values name a character class:
	// digit, letter, alnum, nonspace or any.
	Tokens map[string]string `yaml:"tokens"`
	Fields []Field           `yaml:"fields"`
}

var tokenClasses = map[string]mask.Predicate{
	"digit":    mask.IsDigit,
	"letter":   mask.IsLetter,
	"alnum":    mask.IsAlnum,
	"nonspace": mask.IsNonSpace,
	"any":      mask.IsAny,
}

// ParseFields decodes and validates field definitions from r.
func ParseFields(r io.Reader) (Fields, error) {
	var fs Fields
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fs); err != nil && !errors.Is(err, io.EOF) {
		return Fields{}, errors.Join(ErrInvalidFields, err)
	}

	tokens, err := fs.TokenTable()
	if err != nil {
		return Fields{}, err
	}

	seen := make(map[string]struct{}, len(fs.Fields))
	for i, f := range fs.Fields {
		if f.Name == "" {
			return Fields{}, fmt.Errorf("%w: field #%d", ErrFieldName, i+1)
		}
		if _, ok := seen[f.Name]; ok {
			return Fields{}, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}

		if err := f.Config.Validate(tokens); err != nil {
			return Fields{}, fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return fs, nil
}

// LoadFieldsFile reads field definitions from path.
func LoadFieldsFile(path string) (Fields, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fields{}, errors.Join(ErrInvalidFields, err)
	}
	defer f.Close()
	return ParseFields(f)
}

// TokenTable returns the default token table extended with the custom tokens.
func (fs Fields) TokenTable() (mask.Tokens, error) {
	tokens := mask.DefaultTokens()
	for sym, class := range fs.Tokens {
		runes := []rune(sym)
		if len(runes) != 1 {
			return mask.Tokens{}, fmt.Errorf("%w: symbol %q must be a single character", ErrTokenClass, sym)
		}
		pred, ok := tokenClasses[class]
		if !ok {
			return mask.Tokens{}, fmt.Errorf("%w: %q", ErrTokenClass, class)
		}
		tokens = tokens.With(runes[0], pred)
	}
	return tokens, nil
}

// Lookup returns the field named name.
func (fs Fields) Lookup(name string) (Field, bool) {
	for _, f := range fs.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
