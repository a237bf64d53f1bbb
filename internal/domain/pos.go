package domain

import "strings"

// posMap maps lowercase part-of-speech tokens to their canonical
// trailing-dot abbreviations as stored in the sheet.
var posMap = map[string]string{
	// Full English names
	"noun":         "n.",
	"verb":         "v.",
	"adjective":    "adj.",
	"adverb":       "adv.",
	"preposition":  "prep.",
	"pronoun":      "pron.",
	"conjunction":  "conj.",
	"interjection": "interj.",

	// Already-abbreviated forms, with or without the dot
	"n":       "n.",
	"v":       "v.",
	"adj":     "adj.",
	"adv":     "adv.",
	"prep":    "prep.",
	"pron":    "pron.",
	"conj":    "conj.",
	"interj":  "interj.",
	"n.":      "n.",
	"v.":      "v.",
	"adj.":    "adj.",
	"adv.":    "adv.",
	"prep.":   "prep.",
	"pron.":   "pron.",
	"conj.":   "conj.",
	"interj.": "interj.",
}

// CanonicalPOS converts a part-of-speech token to its canonical abbreviation.
// The lookup is case-insensitive and tolerates surrounding whitespace.
// Unrecognized values pass through trimmed and lowercased, never rejected.
func CanonicalPOS(pos string) string {
	p := strings.ToLower(strings.TrimSpace(pos))
	if p == "" {
		return ""
	}
	if canonical, ok := posMap[p]; ok {
		return canonical
	}
	return p
}
