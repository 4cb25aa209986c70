package hint

import "strings"

// Matcher returns the candidates a token completes to, in candidate order.
type Matcher interface {
	Match(token string) []string
}

// Filter returns the candidates that start with token, preserving order.
// Matching is a case-sensitive literal prefix test. An empty token matches
// nothing.
func Filter(token string, candidates []string) []string {
	if token == "" {
		return nil
	}
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, token) {
			out = append(out, c)
		}
	}
	return out
}

// List matches by scanning a candidate slice.
type List []string

func (l List) Match(token string) []string { return Filter(token, l) }
