package actions

import "github.com/footprint-tools/clik/args"

// ShowCounter prints the session counter.
func ShowCounter(s *Session, _ []string) error {
	s.println(s.Counter)
	return nil
}

func CounterAdd(s *Session, v args.Values) error {
	s.Counter += v.Int("n")
	s.println(s.Counter)
	return nil
}

func CounterSub(s *Session, v args.Values) error {
	s.Counter -= v.Int("n")
	s.println(s.Counter)
	return nil
}

func CounterReset(s *Session, _ []string) error {
	s.Counter = 0
	s.println(s.Counter)
	return nil
}
