// Package filter evaluates filter queries against the document.
package filter

import (
	"strings"

	"lsi/pkg/todotxt"
)

// Apply returns the items passing every whitespace-separated token of the
// query, in the order they were given. An empty query matches everything.
//
// A token of the form @name or +name matches items carrying that exact
// context or project; any other token matches case-insensitively against
// the rendered line. Matching is total: there is no such thing as a
// malformed query, only tokens that degrade to substring matches.
func Apply(items []todotxt.Item, query string) []todotxt.Item {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return items
	}

	out := make([]todotxt.Item, 0, len(items))
	for _, it := range items {
		if matchesAll(it, tokens) {
			out = append(out, it)
		}
	}
	return out
}

func matchesAll(it todotxt.Item, tokens []string) bool {
	for _, tok := range tokens {
		if !matches(it, tok) {
			return false
		}
	}
	return true
}

func matches(it todotxt.Item, token string) bool {
	if len(token) > 1 {
		switch token[0] {
		case '@':
			return containsTag(it.Contexts(), token[1:])
		case '+':
			return containsTag(it.Projects(), token[1:])
		}
	}
	return strings.Contains(strings.ToLower(it.String()), strings.ToLower(token))
}

func containsTag(tags []string, name string) bool {
	for _, t := range tags {
		if t == name {
			return true
		}
	}
	return false
}
