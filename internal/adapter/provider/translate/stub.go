// Package translate holds meaning-translation providers for smart add.
// Until a real provider is wired, the stub keeps the English definition,
// which the enrich service already falls back to.
package translate

import "context"

// Stub is a no-op translator: it returns the input unchanged.
type Stub struct{}

// NewStub creates a new no-op translation provider.
func NewStub() *Stub { return &Stub{} }

// Translate returns the text as-is.
func (s *Stub) Translate(ctx context.Context, text string) (string, error) {
	return text, nil
}
