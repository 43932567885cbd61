package actions

import (
	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/internal/usage"
)

// SetEntry stores value under key.
func SetEntry(s *Session, v args.Values) error {
	key := v.String("key")
	if err := s.Entries.Put(key, v.String("value")); err != nil {
		return err
	}
	s.printf("%s %s\n", s.styler().Success("set"), key)
	return nil
}

// GetEntry prints the value stored under key.
func GetEntry(s *Session, v args.Values) error {
	key := v.String("key")
	value, ok, err := s.Entries.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return usage.NotFound(key)
	}
	s.println(value)
	return nil
}

// DeleteEntry removes key.
func DeleteEntry(s *Session, v args.Values) error {
	key := v.String("key")
	existed, err := s.Entries.Delete(key)
	if err != nil {
		return err
	}
	if !existed {
		return usage.NotFound(key)
	}
	s.printf("%s %s\n", s.styler().Success("deleted"), key)
	return nil
}

// ListKeys prints every stored key, one per line.
func ListKeys(s *Session, _ []string) error {
	keys, err := s.Entries.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		s.println(s.styler().Muted("(no entries)"))
		return nil
	}
	for _, key := range keys {
		s.println(key)
	}
	return nil
}
