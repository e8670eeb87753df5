package record

import "sort"

// sortedMapKeys returns m's keys in sorted order. EmbeddedMap has no
// defined wire key order; sorting makes encodes reproducible for fixtures
// and diffs without claiming the order is part of the contract.
func sortedMapKeys(m Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedLinkMapKeys(m LinkMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
