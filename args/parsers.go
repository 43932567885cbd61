package args

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Parser converts a single token into a typed value.
type Parser interface {
	Parse(token string) (any, error)
	TypeName() string
}

type typedParser[V any] struct {
	name  string
	parse func(string) (V, error)
}

func (p typedParser[V]) Parse(token string) (any, error) {
	v, err := p.parse(token)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (p typedParser[V]) TypeName() string {
	return p.name
}

// NewParser adapts a typed parse function into a Parser.
func NewParser[V any](typeName string, parse func(string) (V, error)) Parser {
	return typedParser[V]{name: typeName, parse: parse}
}

const dateLayout = "2006-01-02"

var boolLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// Built-in parsers.
var (
	String = NewParser("string", func(s string) (string, error) { return s, nil })

	Int = NewParser("int", strconv.Atoi)

	Int64 = NewParser("int64", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})

	Uint = NewParser("uint", func(s string) (uint, error) {
		n, err := strconv.ParseUint(s, 10, 0)
		return uint(n), err
	})

	Float64 = NewParser("float64", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})

	Bool = NewParser("bool", parseBool)

	Duration = NewParser("duration", time.ParseDuration)

	// Date parses YYYY-MM-DD in UTC.
	Date = NewParser("date", func(s string) (time.Time, error) {
		return time.Parse(dateLayout, s)
	})

	UUID = NewParser("uuid", uuid.Parse)
)

func parseBool(s string) (bool, error) {
	v, ok := boolLiterals[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, fmt.Errorf("invalid boolean value %q; accepted values: true, false, yes, no, on, off, 1, 0", s)
	}
	return v, nil
}
