package rewriting

import "regexp"

// maxLengthRatio bounds how much longer a rewrite may be than its source.
const maxLengthRatio = 2

var numberToken = regexp.MustCompile(`\d+%|\$[\d,]+|\d+x|\d+`)

// validateRewrite reports whether rewritten preserves the facts of
// original: it may not introduce numbers absent from the source and may
// not be more than twice as long.
func validateRewrite(original, rewritten string) bool {
	allowed := make(map[string]bool)
	for _, token := range numberToken.FindAllString(original, -1) {
		allowed[token] = true
	}
	for _, token := range numberToken.FindAllString(rewritten, -1) {
		if !allowed[token] {
			return false
		}
	}

	if len(rewritten) > len(original)*maxLengthRatio {
		return false
	}
	return true
}
