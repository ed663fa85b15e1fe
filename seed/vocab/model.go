package vocab

// ModelProvider is the reserved hook for an external language-model backend
// producing more natural titles and terms. The interface is declared so the
// configuration surface can already select it, but no backing model is
// bundled with the generator: downloading and caching one is a deployment
// decision, not something a seed tool should impose.
type ModelProvider struct{}

// NewModelProvider always fails until a backing model is wired in. Failing
// at construction keeps a misconfigured run from starting at all.
func NewModelProvider() (*ModelProvider, error) {
	return nil, ErrModelProviderNotWired
}

// The method set exists only to satisfy TextProvider; no ModelProvider value
// can be constructed, so none of these are reachable.

func (p *ModelProvider) PersonName() string { panic(ErrModelProviderNotWired) }

func (p *ModelProvider) Publisher() string { panic(ErrModelProviderNotWired) }

func (p *ModelProvider) Title() string { panic(ErrModelProviderNotWired) }

func (p *ModelProvider) Classification() string { panic(ErrModelProviderNotWired) }

func (p *ModelProvider) LanguageCode() string { panic(ErrModelProviderNotWired) }

func (p *ModelProvider) SubjectTerms(_ int) []string { panic(ErrModelProviderNotWired) }

func (p *ModelProvider) GeographicTerms(_ int) []string { panic(ErrModelProviderNotWired) }

func (p *ModelProvider) GenreTerms(_ int) []string { panic(ErrModelProviderNotWired) }

var _ TextProvider = (*ModelProvider)(nil)
