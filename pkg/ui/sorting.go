package ui

import (
	"sort"

	"lsi/pkg/todotxt"
)

// sortByPriority orders items A first, unprioritized after Z, completed
// items last. The sort is stable so equal items keep file order. Display
// only: the file keeps its own order.
func sortByPriority(items []todotxt.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return priorityRank(items[i]) < priorityRank(items[j])
	})
}

func priorityRank(it todotxt.Item) int {
	rank := 26 // unprioritized sorts after Z
	if it.HasPriority() {
		rank = int(it.Priority - 'A')
	}
	if it.Done {
		rank += 100
	}
	return rank
}
