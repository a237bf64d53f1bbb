// Package datamuse queries the Datamuse word API for synonyms and for a
// best-guess part of speech, both used to prefill smart-add suggestions.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// wordPattern keeps only plain words in synonym lists, dropping phrases
// and tokens with odd punctuation.
var wordPattern = regexp.MustCompile(`^[A-Za-z-]+$`)

// Provider fetches synonym and part-of-speech data from the Datamuse API.
type Provider struct {
	baseURL     string
	maxSynonyms int
	httpClient  *http.Client
	log         *slog.Logger
}

// NewProvider creates a Provider for the given base URL.
func NewProvider(baseURL string, maxSynonyms int, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:     baseURL,
		maxSynonyms: maxSynonyms,
		httpClient:  &http.Client{Timeout: timeout},
		log:         logger.With("adapter", "datamuse"),
	}
}

// apiWord is one element of a Datamuse /words response.
type apiWord struct {
	Word string   `json:"word"`
	Tags []string `json:"tags"`
}

// FetchSynonyms returns up to maxSynonyms plain-word synonyms, lowercased,
// deduplicated, in API relevance order.
func (p *Provider) FetchSynonyms(ctx context.Context, word string) ([]string, error) {
	params := url.Values{
		"rel_syn": {word},
		"max":     {"20"},
	}
	items, err := p.getWords(ctx, params)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(items))
	var synonyms []string
	for _, item := range items {
		w := strings.ToLower(strings.TrimSpace(item.Word))
		if w == "" || !wordPattern.MatchString(w) || seen[w] {
			continue
		}
		seen[w] = true
		synonyms = append(synonyms, w)
		if len(synonyms) == p.maxSynonyms {
			break
		}
	}

	p.log.DebugContext(ctx, "datamuse synonyms",
		slog.String("word", word),
		slog.Int("count", len(synonyms)),
	)
	return synonyms, nil
}

// PreferredPOS infers the word's most common part of speech from Datamuse
// metadata tags. Returns "" when the API has no opinion.
func (p *Provider) PreferredPOS(ctx context.Context, word string) (string, error) {
	params := url.Values{
		"sp":  {strings.ToLower(word)},
		"md":  {"p"},
		"max": {"1"},
	}
	items, err := p.getWords(ctx, params)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", nil
	}

	for _, tag := range items[0].Tags {
		switch tag {
		case "n":
			return "noun", nil
		case "v":
			return "verb", nil
		case "adj":
			return "adjective", nil
		case "adv":
			return "adverb", nil
		}
	}
	return "", nil
}

func (p *Provider) getWords(ctx context.Context, params url.Values) ([]apiWord, error) {
	reqURL := p.baseURL + "/words?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("datamuse: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datamuse: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("datamuse: read body: %w", err)
	}

	var items []apiWord
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("datamuse: decode json: %w", err)
	}
	return items, nil
}
