package snapshot

import (
	"maps"
	"slices"
)

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// SortedKeys returns the keys of m in ascending order. Rules use it wherever
// they iterate a map so their output order never depends on map iteration.
func SortedKeys[V any](m map[string]V) []string {
	return sortedKeys(m)
}
