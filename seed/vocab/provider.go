// Package vocab provides the text material of the generator: the
// TextProvider capability for names, titles and controlled terms, and the
// built-in vocabulary definitions (labels, aliases, thesaurus edges) that
// back the default rule-based provider.
package vocab

import (
	"errors"
	"fmt"

	"github.com/Justin21523/school-library-lms/seed/identity"
)

var ErrUnknownProvider = errors.New("unknown text provider")
var ErrModelProviderNotWired = errors.New("model text provider has no backing model wired in")

// TextProvider generates the textual material for catalog records and
// people. Implementations draw from the shared random stream only, never
// from the network or the clock, so a given stream position always yields
// the same text.
type TextProvider interface {
	// PersonName produces a plausible zh-TW person name (no real PII).
	PersonName() string
	Publisher() string
	Title() string
	Classification() string
	LanguageCode() string

	// SubjectTerms returns k distinct subject labels in draw order.
	// k is clamped to the pool size.
	SubjectTerms(k int) []string
	GeographicTerms(k int) []string
	GenreTerms(k int) []string
}

// NewProvider creates the TextProvider selected by kind.
//
// The model variant is declared but not wired up: selecting it fails here,
// loudly, instead of silently degrading to the rule-based output.
func NewProvider(kind string, stream *identity.Stream) (TextProvider, error) {
	switch kind {
	case "rules":
		return NewRulesProvider(stream), nil
	case "model":
		p, err := NewModelProvider()
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, kind)
	}
}
