package scoring

// dedupe removes duplicate terms, preserving first-seen order.
func dedupe(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if !seen[term] {
			out = append(out, term)
			seen[term] = true
		}
	}
	return out
}

// head returns at most the first n terms.
func head(terms []string, n int) []string {
	if len(terms) > n {
		return terms[:n]
	}
	return terms
}
