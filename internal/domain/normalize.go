package domain

import (
	"strings"
)

// keySep joins the word and meaning parts of an identity key. A unit
// separator cannot appear in normalized text, so keys never collide
// across field boundaries.
const keySep = "\x1f"

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved, as is non-Latin
// text (meanings are often Chinese).
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IdentityKey builds the duplicate-detection key for a vocabulary entry.
// Two records with equal keys are the same logical entry: comparison is
// case-insensitive and whitespace-trimmed on both Word and Meaning.
func IdentityKey(word, meaning string) string {
	return NormalizeText(word) + keySep + NormalizeText(meaning)
}
