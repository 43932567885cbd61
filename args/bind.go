package args

import (
	"time"

	"github.com/google/uuid"
)

// Values holds the typed result of a successful [Bind].
type Values struct {
	values map[string]any
	tokens []string
	bound  int
}

// Bind parses tokens against params in order. It fails on the first
// missing or malformed token and returns the zero Values in that case.
func Bind(params []Arg, tokens []string) (Values, error) {
	bound := make(map[string]any, len(params))

	for _, p := range params {
		if len(tokens) <= p.Position {
			return Values{}, &MissingArgumentError{
				Name:     p.Name,
				Position: p.Position,
				Type:     p.TypeName(),
			}
		}

		v, err := p.Type.Parse(tokens[p.Position])
		if err != nil {
			return Values{}, &WrongArgumentError{
				Name:     p.Name,
				Position: p.Position,
				Type:     p.TypeName(),
				Err:      err,
			}
		}
		bound[p.Name] = v
	}

	return Values{values: bound, tokens: tokens, bound: len(params)}, nil
}

// Len returns the number of bound parameters.
func (v Values) Len() int {
	return len(v.values)
}

// Tokens returns every token that was offered to Bind.
func (v Values) Tokens() []string {
	return v.tokens
}

// Rest returns the tokens past the last bound parameter.
func (v Values) Rest() []string {
	if v.bound >= len(v.tokens) {
		return nil
	}
	return v.tokens[v.bound:]
}

// Get returns the raw bound value.
func (v Values) Get(name string) (any, bool) {
	val, ok := v.values[name]
	return val, ok
}

// Lookup returns the value bound to name if it has type V.
func Lookup[V any](v Values, name string) (V, bool) {
	var zero V
	raw, ok := v.values[name]
	if !ok {
		return zero, false
	}
	typed, ok := raw.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}

func (v Values) String(name string) string {
	s, _ := Lookup[string](v, name)
	return s
}

func (v Values) Int(name string) int {
	n, _ := Lookup[int](v, name)
	return n
}

func (v Values) Int64(name string) int64 {
	n, _ := Lookup[int64](v, name)
	return n
}

func (v Values) Uint(name string) uint {
	n, _ := Lookup[uint](v, name)
	return n
}

func (v Values) Float64(name string) float64 {
	f, _ := Lookup[float64](v, name)
	return f
}

func (v Values) Bool(name string) bool {
	b, _ := Lookup[bool](v, name)
	return b
}

func (v Values) Duration(name string) time.Duration {
	d, _ := Lookup[time.Duration](v, name)
	return d
}

// Time returns a value bound with the Date parser.
func (v Values) Time(name string) time.Time {
	t, _ := Lookup[time.Time](v, name)
	return t
}

func (v Values) UUID(name string) uuid.UUID {
	id, _ := Lookup[uuid.UUID](v, name)
	return id
}
