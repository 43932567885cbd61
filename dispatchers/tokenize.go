package dispatchers

import "strings"

// Split breaks a line into tokens on spaces. A double quote toggles quoted
// mode, in which spaces do not split, and is dropped from the output.
// Empty tokens are discarded. An unbalanced quote simply keeps quoted mode
// on until the end of the line.
func Split(line string) []string {
	var (
		tokens   []string
		current  strings.Builder
		inQuotes bool
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	// Both delimiters are ASCII, so walking bytes is safe for UTF-8 input.
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ' ' && !inQuotes:
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()

	return tokens
}
