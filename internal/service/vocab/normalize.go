package vocab

import (
	"strings"

	"github.com/yhlin/vocabsheet/internal/domain"
)

// NormalizeRecord turns a raw record into its canonical form. Pure transform:
//   - missing fields materialize as empty strings
//   - every field is whitespace-trimmed
//   - POS is canonicalized to its abbreviation form
//   - the review date is rewritten to ISO YYYY-MM-DD, or rejected with a
//     ValidationError when non-blank and unparsable
//
// Normalizing an already-canonical record is the identity.
func NormalizeRecord(raw domain.RawRecord) (domain.Record, error) {
	rec := domain.Record{
		Word:     trimmed(raw.Word),
		POS:      domain.CanonicalPOS(trimmed(raw.POS)),
		Meaning:  trimmed(raw.Meaning),
		Example:  trimmed(raw.Example),
		Synonyms: trimmed(raw.Synonyms),
		Topic:    trimmed(raw.Topic),
		Source:   trimmed(raw.Source),
		Note:     trimmed(raw.Note),
	}

	date, err := domain.ParseReviewDate(trimmed(raw.ReviewDate))
	if err != nil {
		return domain.Record{}, err
	}
	rec.ReviewDate = date

	return rec, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
