package domain

// Field names of a vocabulary record, in canonical column order.
// This order defines both the header row and the positional mapping
// of every data row in the store.
const (
	FieldWord       = "Word"
	FieldPOS        = "POS"
	FieldMeaning    = "Meaning"
	FieldExample    = "Example"
	FieldSynonyms   = "Synonyms"
	FieldTopic      = "Topic"
	FieldSource     = "Source"
	FieldReviewDate = "Review Date"
	FieldNote       = "Note"
)

// FieldCount is the number of columns in a canonical row.
const FieldCount = 9

// Header returns the canonical header row. The store's row 1 must always
// equal this sequence; it is regenerated on demand, never trusted as stored.
func Header() []string {
	return []string{
		FieldWord, FieldPOS, FieldMeaning, FieldExample, FieldSynonyms,
		FieldTopic, FieldSource, FieldReviewDate, FieldNote,
	}
}

// Record is one vocabulary entry with all nine fields materialized.
// A missing value is the empty string, never absent.
type Record struct {
	Word       string
	POS        string
	Meaning    string
	Example    string
	Synonyms   string
	Topic      string
	Source     string
	ReviewDate string // ISO YYYY-MM-DD, or "" for "never scheduled"
	Note       string
}

// Row converts the record to a positional row in canonical column order.
func (r Record) Row() []string {
	return []string{
		r.Word, r.POS, r.Meaning, r.Example, r.Synonyms,
		r.Topic, r.Source, r.ReviewDate, r.Note,
	}
}

// Key returns the record's identity key.
func (r Record) Key() string {
	return IdentityKey(r.Word, r.Meaning)
}

// Field returns the value of the field with the given canonical name,
// or "" for an unknown name.
func (r Record) Field(name string) string {
	switch name {
	case FieldWord:
		return r.Word
	case FieldPOS:
		return r.POS
	case FieldMeaning:
		return r.Meaning
	case FieldExample:
		return r.Example
	case FieldSynonyms:
		return r.Synonyms
	case FieldTopic:
		return r.Topic
	case FieldSource:
		return r.Source
	case FieldReviewDate:
		return r.ReviewDate
	case FieldNote:
		return r.Note
	}
	return ""
}

// SetField assigns the field with the given canonical name; unknown names
// are ignored.
func (r *Record) SetField(name, value string) {
	switch name {
	case FieldWord:
		r.Word = value
	case FieldPOS:
		r.POS = value
	case FieldMeaning:
		r.Meaning = value
	case FieldExample:
		r.Example = value
	case FieldSynonyms:
		r.Synonyms = value
	case FieldTopic:
		r.Topic = value
	case FieldSource:
		r.Source = value
	case FieldReviewDate:
		r.ReviewDate = value
	case FieldNote:
		r.Note = value
	}
}

// RecordFromRow maps a positional row onto a Record. Short rows are padded
// with empty strings; columns beyond the canonical nine are ignored.
func RecordFromRow(row []string) Record {
	cells := make([]string, FieldCount)
	copy(cells, row)
	return Record{
		Word:       cells[0],
		POS:        cells[1],
		Meaning:    cells[2],
		Example:    cells[3],
		Synonyms:   cells[4],
		Topic:      cells[5],
		Source:     cells[6],
		ReviewDate: cells[7],
		Note:       cells[8],
	}
}

// RawRecord is one record as received from an input source (interactive
// entry, CLI flags, or a CSV row). Every field is optional; nil means the
// source did not supply it at all, which the normalizer fills with "".
type RawRecord struct {
	Word       *string
	POS        *string
	Meaning    *string
	Example    *string
	Synonyms   *string
	Topic      *string
	Source     *string
	ReviewDate *string
	Note       *string
}

// Set assigns a raw value to the field with the given canonical name.
// Unknown field names are ignored.
func (r *RawRecord) Set(field, value string) {
	v := value
	switch field {
	case FieldWord:
		r.Word = &v
	case FieldPOS:
		r.POS = &v
	case FieldMeaning:
		r.Meaning = &v
	case FieldExample:
		r.Example = &v
	case FieldSynonyms:
		r.Synonyms = &v
	case FieldTopic:
		r.Topic = &v
	case FieldSource:
		r.Source = &v
	case FieldReviewDate:
		r.ReviewDate = &v
	case FieldNote:
		r.Note = &v
	}
}
