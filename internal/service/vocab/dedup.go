package vocab

import (
	"github.com/yhlin/vocabsheet/internal/domain"
)

// Deduplicate collapses an ordered batch of normalized records against
// itself and against the identity keys already present in the store.
// Within the batch, first occurrence wins; any record whose key exists in
// the store is dropped entirely (re-importing a word is a no-op, not an
// update). The relative order of surviving records is preserved.
//
// Pure function: existing is supplied by the caller after a single read
// of the store, and is not modified.
func Deduplicate(batch []domain.Record, existing map[string]bool) []domain.Record {
	seen := make(map[string]bool, len(batch))
	kept := make([]domain.Record, 0, len(batch))

	for _, rec := range batch {
		key := rec.Key()
		if existing[key] || seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, rec)
	}
	return kept
}
