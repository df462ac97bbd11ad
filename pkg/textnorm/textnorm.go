// Package textnorm provides pure text normalization helpers used by the
// cleaning pipeline.
package textnorm

import "strings"

// punctuation is the fixed ASCII punctuation set removed by Normalize.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize lowercases s, removes ASCII punctuation, and trims leading and
// trailing whitespace. It is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}

		return r
	}, s)

	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces runs of whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
