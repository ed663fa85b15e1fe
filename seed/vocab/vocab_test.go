package vocab_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/identity"
	"github.com/Justin21523/school-library-lms/seed/vocab"
)

func Test_NewProvider(t *testing.T) {
	tests := []struct {
		name        string
		kind        string
		expectedErr error
	}{
		{
			name:        "rules_provider_is_wired",
			kind:        "rules",
			expectedErr: nil,
		},
		{
			name:        "model_provider_declared_but_not_wired",
			kind:        "model",
			expectedErr: vocab.ErrModelProviderNotWired,
		},
		{
			name:        "unknown_kind_rejected",
			kind:        "markov",
			expectedErr: vocab.ErrUnknownProvider,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider, err := vocab.NewProvider(tc.kind, identity.NewStream(1))

			if tc.expectedErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, provider)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, provider)
			}
		})
	}
}

func Test_RulesProvider_SameStreamPositionSameText(t *testing.T) {
	first := vocab.NewRulesProvider(identity.NewStream(42))
	second := vocab.NewRulesProvider(identity.NewStream(42))

	for i := 0; i < 20; i++ {
		assert.Equal(t, first.PersonName(), second.PersonName())
		assert.Equal(t, first.Title(), second.Title())
		assert.Equal(t, first.Publisher(), second.Publisher())
		assert.Equal(t, first.LanguageCode(), second.LanguageCode())
		assert.Equal(t, first.SubjectTerms(2), second.SubjectTerms(2))
	}
}

func Test_RulesProvider_TitlesLeaveNoPlaceholders(t *testing.T) {
	provider := vocab.NewRulesProvider(identity.NewStream(3))

	for i := 0; i < 200; i++ {
		title := provider.Title()
		assert.NotContains(t, title, "{")
		assert.NotContains(t, title, "}")
		assert.NotEmpty(t, title)
	}
}

func Test_RulesProvider_TermSamples(t *testing.T) {
	provider := vocab.NewRulesProvider(identity.NewStream(5))

	t.Run("zero_count_still_yields_one_term", func(t *testing.T) {
		assert.Len(t, provider.SubjectTerms(0), 1)
	})

	t.Run("oversized_count_clamped_to_pool", func(t *testing.T) {
		terms := provider.GeographicTerms(10_000)
		assert.NotEmpty(t, terms)
		assert.LessOrEqual(t, len(terms), 10_000)

		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			assert.False(t, seen[term])
			seen[term] = true
		}
	})

	t.Run("sampled_labels_exist_in_builtin_vocabulary", func(t *testing.T) {
		preferred := make(map[string]bool)
		for _, v := range vocab.Builtin() {
			for _, term := range v.Terms {
				preferred[v.Kind+"/"+term.Preferred] = true
			}
		}

		for _, label := range provider.SubjectTerms(3) {
			assert.True(t, preferred[seed.TermKindSubject+"/"+label], label)
		}
		for _, label := range provider.GenreTerms(2) {
			assert.True(t, preferred[seed.TermKindGenre+"/"+label], label)
		}
	})
}

func Test_RulesProvider_PersonNamesAreShortCJK(t *testing.T) {
	provider := vocab.NewRulesProvider(identity.NewStream(9))

	for i := 0; i < 100; i++ {
		name := provider.PersonName()
		length := len(strings.Split(strings.TrimSpace(name), ""))
		assert.GreaterOrEqual(t, length, 2)
		assert.LessOrEqual(t, length, 4)
	}
}

func Test_Builtin_ShapeIsStable(t *testing.T) {
	vocabularies := vocab.Builtin()
	require.Len(t, vocabularies, 3)

	kinds := make(map[string]vocab.Vocabulary, len(vocabularies))
	for _, v := range vocabularies {
		kinds[v.Kind] = v
		assert.Equal(t, vocab.BuiltinVocabularyCode, v.Code)
		assert.NotEmpty(t, v.Terms)
	}

	assert.Contains(t, kinds, seed.TermKindSubject)
	assert.Contains(t, kinds, seed.TermKindGeographic)
	assert.Contains(t, kinds, seed.TermKindGenre)

	assert.NotEmpty(t, kinds[seed.TermKindSubject].Edges)
	assert.NotEmpty(t, kinds[seed.TermKindGeographic].Edges)
}

func Test_ModelProvider_FailsAtConstruction(t *testing.T) {
	provider, err := vocab.NewModelProvider()

	assert.ErrorIs(t, err, vocab.ErrModelProviderNotWired)
	assert.Nil(t, provider)
}
