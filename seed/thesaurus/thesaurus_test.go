package thesaurus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/thesaurus"
	"github.com/Justin21523/school-library-lms/seed/vocab"
)

func Test_ValidateAll_BuiltinVocabulariesAreClean(t *testing.T) {
	assert.NoError(t, thesaurus.ValidateAll(vocab.Builtin()))
}

func Test_Build_RejectsStructuralDefects(t *testing.T) {
	tests := []struct {
		name        string
		vocabulary  vocab.Vocabulary
		expectedErr error
	}{
		{
			name: "duplicate_preferred_label",
			vocabulary: vocab.Vocabulary{
				Kind: seed.TermKindSubject,
				Code: "test",
				Terms: []vocab.Term{
					{Preferred: "閱讀推廣"},
					{Preferred: "閱讀推廣"},
				},
			},
			expectedErr: thesaurus.ErrDuplicatePreferredLabel,
		},
		{
			name: "variant_equals_a_preferred_label",
			vocabulary: vocab.Vocabulary{
				Kind: seed.TermKindSubject,
				Code: "test",
				Terms: []vocab.Term{
					{Preferred: "資訊素養", Variants: []string{"媒體識讀"}},
					{Preferred: "媒體識讀"},
				},
			},
			expectedErr: thesaurus.ErrVariantCollidesWithPreferred,
		},
		{
			name: "variant_claimed_by_two_terms",
			vocabulary: vocab.Vocabulary{
				Kind: seed.TermKindSubject,
				Code: "test",
				Terms: []vocab.Term{
					{Preferred: "程式設計", Variants: []string{"寫程式"}},
					{Preferred: "軟體開發", Variants: []string{"寫程式"}},
				},
			},
			expectedErr: thesaurus.ErrVariantClaimedTwice,
		},
		{
			name: "edge_to_unknown_label",
			vocabulary: vocab.Vocabulary{
				Kind:  seed.TermKindSubject,
				Code:  "test",
				Terms: []vocab.Term{{Preferred: "程式設計"}},
				Edges: []vocab.Edge{
					{From: "程式設計", To: "不存在的主題", Type: seed.RelationBroader},
				},
			},
			expectedErr: thesaurus.ErrUnknownEdgeEndpoint,
		},
		{
			name: "edge_from_unknown_label",
			vocabulary: vocab.Vocabulary{
				Kind:  seed.TermKindSubject,
				Code:  "test",
				Terms: []vocab.Term{{Preferred: "程式設計"}},
				Edges: []vocab.Edge{
					{From: "不存在的主題", To: "程式設計", Type: seed.RelationRelated},
				},
			},
			expectedErr: thesaurus.ErrUnknownEdgeEndpoint,
		},
		{
			name: "self_relation",
			vocabulary: vocab.Vocabulary{
				Kind:  seed.TermKindGenre,
				Code:  "test",
				Terms: []vocab.Term{{Preferred: "漫畫"}},
				Edges: []vocab.Edge{
					{From: "漫畫", To: "漫畫", Type: seed.RelationRelated},
				},
			},
			expectedErr: thesaurus.ErrSelfRelation,
		},
		{
			name: "unknown_relation_type",
			vocabulary: vocab.Vocabulary{
				Kind:  seed.TermKindSubject,
				Code:  "test",
				Terms: []vocab.Term{{Preferred: "甲"}, {Preferred: "乙"}},
				Edges: []vocab.Edge{
					{From: "甲", To: "乙", Type: "narrower"},
				},
			},
			expectedErr: thesaurus.ErrUnknownRelationType,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := thesaurus.Build(tc.vocabulary)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, g)
		})
	}
}

func Test_Validate_ReportsFullCyclePath(t *testing.T) {
	vocabulary := vocab.Vocabulary{
		Kind: seed.TermKindSubject,
		Code: "test",
		Terms: []vocab.Term{
			{Preferred: "甲"},
			{Preferred: "乙"},
			{Preferred: "丙"},
		},
		Edges: []vocab.Edge{
			{From: "甲", To: "乙", Type: seed.RelationBroader},
			{From: "乙", To: "丙", Type: seed.RelationBroader},
			{From: "丙", To: "甲", Type: seed.RelationBroader},
		},
	}

	err := thesaurus.Validate(vocabulary)

	require.Error(t, err)
	assert.ErrorIs(t, err, thesaurus.ErrBroaderCycle)

	// Every term of the loop is named so the defect can be fixed without
	// re-running.
	assert.Contains(t, err.Error(), "甲")
	assert.Contains(t, err.Error(), "乙")
	assert.Contains(t, err.Error(), "丙")
	assert.Contains(t, err.Error(), "甲 -> 乙 -> 丙 -> 甲")
	assert.Contains(t, err.Error(), "subject/test")
}

func Test_Validate_TwoNodeCycle(t *testing.T) {
	vocabulary := vocab.Vocabulary{
		Kind:  seed.TermKindGeographic,
		Code:  "test",
		Terms: []vocab.Term{{Preferred: "臺北市"}, {Preferred: "臺灣"}},
		Edges: []vocab.Edge{
			{From: "臺北市", To: "臺灣", Type: seed.RelationBroader},
			{From: "臺灣", To: "臺北市", Type: seed.RelationBroader},
		},
	}

	assert.ErrorIs(t, thesaurus.Validate(vocabulary), thesaurus.ErrBroaderCycle)
}

func Test_Validate_DiamondIsNotACycle(t *testing.T) {
	vocabulary := vocab.Vocabulary{
		Kind: seed.TermKindSubject,
		Code: "test",
		Terms: []vocab.Term{
			{Preferred: "根"},
			{Preferred: "左"},
			{Preferred: "右"},
			{Preferred: "葉"},
		},
		Edges: []vocab.Edge{
			{From: "左", To: "根", Type: seed.RelationBroader},
			{From: "右", To: "根", Type: seed.RelationBroader},
			{From: "葉", To: "左", Type: seed.RelationBroader},
			{From: "葉", To: "右", Type: seed.RelationBroader},
		},
	}

	assert.NoError(t, thesaurus.Validate(vocabulary))
}

func Test_Validate_RelatedEdgesNeverFormCycles(t *testing.T) {
	// Related edges are symmetric associations; only broader edges carry
	// hierarchy, so a related loop is legal.
	vocabulary := vocab.Vocabulary{
		Kind:  seed.TermKindSubject,
		Code:  "test",
		Terms: []vocab.Term{{Preferred: "甲"}, {Preferred: "乙"}},
		Edges: []vocab.Edge{
			{From: "甲", To: "乙", Type: seed.RelationRelated},
			{From: "乙", To: "甲", Type: seed.RelationRelated},
		},
	}

	assert.NoError(t, thesaurus.Validate(vocabulary))
}
