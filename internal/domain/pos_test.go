package domain

import "testing"

func TestCanonicalPOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"noun", "n."},
		{"Verb", "v."},
		{"ADJECTIVE", "adj."},
		{"adverb", "adv."},
		{"preposition", "prep."},
		{"pronoun", "pron."},
		{"conjunction", "conj."},
		{"interjection", "interj."},
		{"n", "n."},
		{"n.", "n."},
		{" adj ", "adj."},
		{"", ""},
		{"   ", ""},
		// Unrecognized values pass through trimmed and lowercased.
		{"Phrasal Verb", "phrasal verb"},
		{"aux.", "aux."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := CanonicalPOS(tt.input); got != tt.want {
				t.Errorf("CanonicalPOS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
