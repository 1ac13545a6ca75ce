package directory

import "strings"

// SearchTerm flattens a venue name to the single line it is typed as.
func SearchTerm(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Complete returns the first term starting with typed. Matching is case
// sensitive and an empty typed value never completes.
func Complete(typed string, terms []string) (string, bool) {
	if typed == "" {
		return "", false
	}
	for _, term := range terms {
		if strings.HasPrefix(term, typed) {
			return term, true
		}
	}
	return "", false
}

// Suggest returns up to limit distinct terms starting with typed, in term
// order. A limit of zero or less means no limit.
func Suggest(typed string, terms []string, limit int) []string {
	if typed == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, term := range terms {
		if !strings.HasPrefix(term, typed) {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
