package handler

import "strings"

// parseListLiteral recognises a bracketed, comma-separated literal like
// "[a, b, c]" and returns its trimmed entries. Entries are split on every
// comma — nested containers are not supported, matching
// Sequence/Mapping's scope as a bounded container-literal surface rather
// than a general parser (SPEC_FULL.md §12 Non-goals).
func parseListLiteral(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return []string{}, true
	}
	parts := strings.Split(inner, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out, true
}

// parseMapLiteral recognises a braced, comma-separated "k:v" literal like
// "{a:1, b:2}" and returns its trimmed key/value pairs in order.
func parseMapLiteral(s string) ([][2]string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, false
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return [][2]string{}, true
	}
	parts := strings.Split(inner, ",")
	out := make([][2]string, 0, len(parts))
	for _, p := range parts {
		kv := strings.SplitN(p, ":", 2)
		if len(kv) != 2 {
			return nil, false
		}
		out = append(out, [2]string{strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])})
	}
	return out, true
}
