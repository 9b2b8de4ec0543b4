package generator

import "strings"

// SplitKeywords parses the comma-separated keyword field into an ordered list of
// distinct keywords. Entries are trimmed, empties dropped, and duplicates removed
// case-insensitively with the first spelling kept.
func SplitKeywords(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, piece := range strings.Split(csv, ",") {
		kw := strings.TrimSpace(piece)
		if kw == "" {
			continue
		}
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, kw)
	}
	return out
}

// PrimaryKeyword picks the keyword the title must carry: the first user keyword,
// else the first word of the topic, else the store's default category.
func PrimaryKeyword(topic string, keywords []string) string {
	if len(keywords) > 0 {
		return keywords[0]
	}
	if fields := strings.Fields(topic); len(fields) > 0 {
		return fields[0]
	}
	return "여성의류"
}
