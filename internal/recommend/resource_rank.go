package recommend

import "sort"

// Scored is anything carrying a ranking score.
type Scored interface {
	Score() float64
}

// RankResources returns a copy of items ordered by score, highest first.
// Items with equal scores keep their input order.
func RankResources[T Scored](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}
