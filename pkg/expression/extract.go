// Package expression isolates every piece of parsing done on the small
// FHIRPath-like expressions embedded in item extensions.
package expression

import "regexp"

// linkIDRegex matches linkId='X' and linkId="X". RE2 has no backreferences,
// so each quote style gets its own capture group.
var linkIDRegex = regexp.MustCompile(`linkId\s*=\s*(?:'([^']*)'|"([^"]*)")`)

// ExtractLinkIDs returns the distinct linkIds referenced by the expression,
// in order of first appearance. Empty or malformed input yields nil.
func ExtractLinkIDs(expr string) []string {
	if expr == "" {
		return nil
	}
	matches := linkIDRegex.FindAllStringSubmatch(expr, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		id := m[1]
		if id == "" {
			id = m[2]
		}
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// FirstLinkID returns the first referenced linkId, or "".
func FirstLinkID(expr string) string {
	ids := ExtractLinkIDs(expr)
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
