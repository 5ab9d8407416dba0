package palette

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the command whose title is closest to the query when
// Match came back empty, for a "did you mean" hint. The threshold scales
// with query length so short queries don't suggest wildly. Suggestions
// never feed back into Match results or their ordering.
func (r *Registry) Suggest(query string) (Command, bool) {
	if r == nil {
		return Command{}, false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Command{}, false
	}
	best := -1
	var bestCmd Command
	for _, c := range r.commands {
		d := levenshtein.ComputeDistance(q, strings.ToLower(strings.TrimSpace(c.Title)))
		if best == -1 || d < best {
			best = d
			bestCmd = c
		}
	}
	if best < 0 || best > suggestThreshold(len(q)) {
		return Command{}, false
	}
	return bestCmd, true
}

func suggestThreshold(queryLen int) int {
	t := queryLen / 2
	if t < 2 {
		t = 2
	}
	if t > 6 {
		t = 6
	}
	return t
}
