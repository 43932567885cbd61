package dispatchers

import (
	"sort"
	"strings"
)

const maxSuggestDistance = 3

// levenshtein calculates the case-insensitive edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

func similarNames[T any](input string, commands map[string]*Command[T], maxResults int) []string {
	var suggestions []suggestion

	for name := range commands {
		dist := levenshtein(input, name)
		if dist <= maxSuggestDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if maxResults >= 0 && len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}

// Suggest returns up to maxResults top-level command names close to input.
func (c *CLI[T]) Suggest(input string, maxResults int) []string {
	return similarNames(input, c.commands, maxResults)
}

// Suggest returns up to maxResults subcommand names close to input.
func (c *Command[T]) Suggest(input string, maxResults int) []string {
	return similarNames(input, c.subcommands, maxResults)
}
