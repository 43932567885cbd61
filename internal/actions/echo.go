package actions

import "strings"

// Echo prints its tokens separated by single spaces.
func Echo(s *Session, rest []string) error {
	s.println(strings.Join(rest, " "))
	return nil
}
