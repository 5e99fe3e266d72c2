// Package normalizer canonicalizes text for comparison and turns raw catalog
// records into typed entities.
package normalizer

import (
	"strings"
)

// Normalize lower-cases text and deletes every character that is not an ASCII
// letter or digit. "St. Peter's Basilica" becomes "stpetersbasilica".
// Non-ASCII letters are deleted as well; there is no Unicode folding.
func Normalize(text string) string {
	lower := strings.ToLower(text)

	var sb strings.Builder

	sb.Grow(len(lower))

	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			sb.WriteByte(c)
		}
	}

	return strings.TrimSpace(sb.String())
}

// Words splits text on whitespace and normalizes each word on its own, so
// word boundaries survive normalization. Words that normalize to nothing are dropped.
func Words(text string) []string {
	return normalizeAll(strings.Fields(text))
}

// IDWords splits an identifier on hyphens and underscores and normalizes each part.
func IDWords(id string) []string {
	return normalizeAll(strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	}))
}

func normalizeAll(parts []string) []string {
	words := make([]string, 0, len(parts))

	for _, p := range parts {
		if w := Normalize(p); w != "" {
			words = append(words, w)
		}
	}

	return words
}
