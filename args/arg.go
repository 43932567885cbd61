// Package args binds positional string tokens to typed values.
//
// A command declares its parameters as an ordered list of [Arg]
// descriptors. [Bind] walks that list, parses the token at each
// descriptor's position with the descriptor's [Parser], and stops at the
// first missing or malformed token. Tokens past the last descriptor are
// left untouched and exposed through [Values.Rest].
package args

import (
	"errors"
	"fmt"
)

// Arg describes one positional parameter of a command.
type Arg struct {
	Name     string
	Type     Parser
	Position int
	Help     string
}

// Param builds a descriptor. The position is assigned by [Params].
func Param(name string, parser Parser, help ...string) Arg {
	a := Arg{Name: name, Type: parser}
	if len(help) > 0 {
		a.Help = help[0]
	}
	return a
}

// Params returns the descriptors with positions numbered 0..n-1 in
// declaration order.
func Params(list ...Arg) []Arg {
	out := make([]Arg, len(list))
	for i, a := range list {
		a.Position = i
		out[i] = a
	}
	return out
}

// TypeName returns the declared type name of the argument.
func (a Arg) TypeName() string {
	if a.Type == nil {
		return "?"
	}
	return a.Type.TypeName()
}

// Placeholder renders the argument as "<name:type>" for usage lines.
func (a Arg) Placeholder() string {
	return fmt.Sprintf("<%s:%s>", a.Name, a.TypeName())
}

var errEmptyName = errors.New("args: empty parameter name")

// Validate checks that positions form the contiguous sequence 0..n-1 in
// order, that names are unique and that every descriptor has a parser.
func Validate(params []Arg) error {
	seen := make(map[string]bool, len(params))
	for i, a := range params {
		if a.Name == "" {
			return fmt.Errorf("%w at index %d", errEmptyName, i)
		}
		if a.Position != i {
			return fmt.Errorf("args: parameter '%s' has position %d, want %d", a.Name, a.Position, i)
		}
		if a.Type == nil {
			return fmt.Errorf("args: parameter '%s' has no parser", a.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("args: duplicate parameter '%s'", a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}
