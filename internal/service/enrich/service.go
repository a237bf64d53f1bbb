// Package enrich builds prefilled vocabulary records for smart add: the user
// types only the word, and dictionary/synonym providers supply the rest.
package enrich

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/yhlin/vocabsheet/internal/domain"
	"github.com/yhlin/vocabsheet/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

type synonymProvider interface {
	FetchSynonyms(ctx context.Context, word string) ([]string, error)
	PreferredPOS(ctx context.Context, word string) (string, error)
}

type translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type payloadCache interface {
	Get(ctx context.Context, word string) ([]byte, bool, error)
	Put(ctx context.Context, word string, payload []byte) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service assembles record suggestions from external word data.
type Service struct {
	log        *slog.Logger
	dict       dictionaryProvider
	syn        synonymProvider
	translate  translator
	cache      payloadCache // nil disables caching
	sourceName string
}

// NewService creates an enrichment service. cache may be nil.
func NewService(logger *slog.Logger, dict dictionaryProvider, syn synonymProvider, tr translator, cache payloadCache) *Service {
	return &Service{
		log:        logger.With("service", "enrich"),
		dict:       dict,
		syn:        syn,
		translate:  tr,
		cache:      cache,
		sourceName: "dictionaryapi.dev",
	}
}

// suggestion is the cacheable intermediate form of a prefilled record.
type suggestion struct {
	Word     string `json:"word"`
	POS      string `json:"pos"`
	Meaning  string `json:"meaning"`
	Example  string `json:"example"`
	Synonyms string `json:"synonyms"`
	Source   string `json:"source"`
}

// Suggest builds a prefilled raw record for the given word. Provider
// failures degrade gracefully: whatever could be fetched is filled in and
// the rest stays empty; the caller (an interactive prompt) lets the user
// complete it. Only a blank word is an error.
func (s *Service) Suggest(ctx context.Context, word string) (domain.RawRecord, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return domain.RawRecord{}, domain.NewValidationError(domain.FieldWord, "", "required")
	}

	if sug, ok := s.cached(ctx, word); ok {
		return sug.rawRecord(), nil
	}

	sug := suggestion{Word: word, POS: "n.", Source: "auto"}

	preferredPOS := ""
	if pos, err := s.syn.PreferredPOS(ctx, word); err != nil {
		s.log.WarnContext(ctx, "preferred pos lookup failed", slog.String("word", word), slog.String("error", err.Error()))
	} else {
		preferredPOS = pos
	}

	if result, err := s.dict.FetchEntry(ctx, word); err != nil {
		s.log.WarnContext(ctx, "dictionary lookup failed", slog.String("word", word), slog.String("error", err.Error()))
	} else if result != nil && len(result.Senses) > 0 {
		best := pickBestSense(result.Senses, preferredPOS)
		if pos := domain.CanonicalPOS(best.PartOfSpeech); pos != "" {
			sug.POS = pos
		}
		sug.Meaning = strings.TrimSpace(best.Definition)
		sug.Example = strings.TrimSpace(best.Example)
		sug.Source = s.sourceName
	}

	if sug.Meaning != "" {
		if translated, err := s.translate.Translate(ctx, sug.Meaning); err != nil {
			s.log.WarnContext(ctx, "translation failed", slog.String("word", word), slog.String("error", err.Error()))
		} else if strings.TrimSpace(translated) != "" {
			sug.Meaning = strings.TrimSpace(translated)
		}
	}

	if synonyms, err := s.syn.FetchSynonyms(ctx, word); err != nil {
		s.log.WarnContext(ctx, "synonym lookup failed", slog.String("word", word), slog.String("error", err.Error()))
	} else {
		sug.Synonyms = strings.Join(synonyms, " | ")
	}

	s.store(ctx, word, sug)
	return sug.rawRecord(), nil
}

// pickBestSense chooses the sense to prefill from. Senses matching the
// preferred part of speech win; within the candidates, the first one
// carrying an example wins over the plain first.
func pickBestSense(senses []provider.SenseResult, preferredPOS string) provider.SenseResult {
	if preferredPOS != "" {
		var matched []provider.SenseResult
		for _, sense := range senses {
			if strings.EqualFold(sense.PartOfSpeech, preferredPOS) {
				matched = append(matched, sense)
			}
		}
		if len(matched) > 0 {
			return firstWithExample(matched)
		}
	}
	return firstWithExample(senses)
}

func firstWithExample(senses []provider.SenseResult) provider.SenseResult {
	for _, sense := range senses {
		if sense.Example != "" {
			return sense
		}
	}
	return senses[0]
}

func (s *Service) cached(ctx context.Context, word string) (suggestion, bool) {
	if s.cache == nil {
		return suggestion{}, false
	}
	payload, ok, err := s.cache.Get(ctx, word)
	if err != nil {
		s.log.WarnContext(ctx, "cache read failed", slog.String("word", word), slog.String("error", err.Error()))
		return suggestion{}, false
	}
	if !ok {
		return suggestion{}, false
	}
	var sug suggestion
	if err := json.Unmarshal(payload, &sug); err != nil {
		s.log.WarnContext(ctx, "cache payload corrupt", slog.String("word", word), slog.String("error", err.Error()))
		return suggestion{}, false
	}
	return sug, true
}

func (s *Service) store(ctx context.Context, word string, sug suggestion) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(sug)
	if err != nil {
		return
	}
	if err := s.cache.Put(ctx, word, payload); err != nil {
		s.log.WarnContext(ctx, "cache write failed", slog.String("word", word), slog.String("error", err.Error()))
	}
}

func (sug suggestion) rawRecord() domain.RawRecord {
	var raw domain.RawRecord
	raw.Set(domain.FieldWord, sug.Word)
	raw.Set(domain.FieldPOS, sug.POS)
	raw.Set(domain.FieldMeaning, sug.Meaning)
	raw.Set(domain.FieldExample, sug.Example)
	raw.Set(domain.FieldSynonyms, sug.Synonyms)
	raw.Set(domain.FieldSource, sug.Source)
	return raw
}
