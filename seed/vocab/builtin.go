package vocab

import (
	"github.com/Justin21523/school-library-lms/seed"
)

// BuiltinVocabularyCode is the vocabulary code of the built-in zh-TW
// controlled vocabularies.
const BuiltinVocabularyCode = "builtin-zh"

// LocalVocabularyCode is the vocabulary code of tenant-local terms, used for
// the name terms harvested from generated creators and contributors.
const LocalVocabularyCode = "local"

// Term defines one entry of a built-in vocabulary: the canonical label and
// its aliases. Variants must never collide with any preferred label.
type Term struct {
	Preferred string
	Variants  []string
}

// Edge is a typed directed relation between two preferred labels of the
// same vocabulary. For broader edges, From is the narrower term.
type Edge struct {
	From string
	To   string
	Type string
}

// Vocabulary is the complete built-in definition of one term kind.
type Vocabulary struct {
	Kind  string
	Code  string
	Terms []Term
	Edges []Edge
}

// Builtin returns the full built-in vocabularies, one per controlled kind.
// The returned slices are process-scoped constant data: callers must treat
// them as immutable. The whole set is validated before any generation run.
func Builtin() []Vocabulary {
	return []Vocabulary{
		{Kind: seed.TermKindSubject, Code: BuiltinVocabularyCode, Terms: subjectTerms, Edges: subjectEdges},
		{Kind: seed.TermKindGeographic, Code: BuiltinVocabularyCode, Terms: geographicTerms, Edges: geographicEdges},
		{Kind: seed.TermKindGenre, Code: BuiltinVocabularyCode, Terms: genreTerms, Edges: genreEdges},
	}
}

var subjectTerms = []Term{
	{Preferred: "閱讀推廣"},
	{Preferred: "資訊素養", Variants: []string{"資訊能力"}},
	{Preferred: "圖書館管理", Variants: []string{"圖書館經營"}},
	{Preferred: "編目與分類"},
	{Preferred: "校園閱讀"},
	{Preferred: "生命教育"},
	{Preferred: "環境教育"},
	{Preferred: "媒體識讀", Variants: []string{"媒體素養"}},
	{Preferred: "資訊倫理"},
	{Preferred: "科普教育", Variants: []string{"科學普及"}},
	{Preferred: "數學思維"},
	{Preferred: "語文表達"},
	{Preferred: "歷史入門"},
	{Preferred: "地理概念"},
	{Preferred: "藝術欣賞"},
	{Preferred: "音樂素養"},
	{Preferred: "程式設計", Variants: []string{"電腦程式設計"}},
	{Preferred: "AI 基礎", Variants: []string{"人工智慧基礎"}},
	{Preferred: "資料分析"},
	{Preferred: "親職教育"},
}

var subjectEdges = []Edge{
	{From: "資訊倫理", To: "資訊素養", Type: seed.RelationBroader},
	{From: "媒體識讀", To: "資訊素養", Type: seed.RelationBroader},
	{From: "程式設計", To: "資訊素養", Type: seed.RelationBroader},
	{From: "AI 基礎", To: "程式設計", Type: seed.RelationBroader},
	{From: "資料分析", To: "程式設計", Type: seed.RelationBroader},
	{From: "校園閱讀", To: "閱讀推廣", Type: seed.RelationBroader},
	{From: "編目與分類", To: "圖書館管理", Type: seed.RelationBroader},
	{From: "數學思維", To: "科普教育", Type: seed.RelationBroader},
	{From: "閱讀推廣", To: "語文表達", Type: seed.RelationRelated},
	{From: "生命教育", To: "親職教育", Type: seed.RelationRelated},
	{From: "藝術欣賞", To: "音樂素養", Type: seed.RelationRelated},
}

var geographicTerms = []Term{
	{Preferred: "臺灣", Variants: []string{"台灣"}},
	{Preferred: "臺北市", Variants: []string{"台北市"}},
	{Preferred: "新北市"},
	{Preferred: "桃園市"},
	{Preferred: "臺中市", Variants: []string{"台中市"}},
	{Preferred: "臺南市", Variants: []string{"台南市"}},
	{Preferred: "高雄市"},
	{Preferred: "基隆市"},
	{Preferred: "新竹市"},
	{Preferred: "嘉義市"},
	{Preferred: "宜蘭縣"},
	{Preferred: "花蓮縣"},
	{Preferred: "臺東縣", Variants: []string{"台東縣"}},
	{Preferred: "澎湖縣"},
	{Preferred: "南投縣"},
	{Preferred: "屏東縣"},
}

var geographicEdges = []Edge{
	{From: "臺北市", To: "臺灣", Type: seed.RelationBroader},
	{From: "新北市", To: "臺灣", Type: seed.RelationBroader},
	{From: "桃園市", To: "臺灣", Type: seed.RelationBroader},
	{From: "臺中市", To: "臺灣", Type: seed.RelationBroader},
	{From: "臺南市", To: "臺灣", Type: seed.RelationBroader},
	{From: "高雄市", To: "臺灣", Type: seed.RelationBroader},
	{From: "基隆市", To: "臺灣", Type: seed.RelationBroader},
	{From: "新竹市", To: "臺灣", Type: seed.RelationBroader},
	{From: "嘉義市", To: "臺灣", Type: seed.RelationBroader},
	{From: "宜蘭縣", To: "臺灣", Type: seed.RelationBroader},
	{From: "花蓮縣", To: "臺灣", Type: seed.RelationBroader},
	{From: "臺東縣", To: "臺灣", Type: seed.RelationBroader},
	{From: "澎湖縣", To: "臺灣", Type: seed.RelationBroader},
	{From: "南投縣", To: "臺灣", Type: seed.RelationBroader},
	{From: "屏東縣", To: "臺灣", Type: seed.RelationBroader},
	{From: "臺北市", To: "新北市", Type: seed.RelationRelated},
}

var genreTerms = []Term{
	{Preferred: "兒童文學"},
	{Preferred: "繪本", Variants: []string{"圖畫書"}},
	{Preferred: "橋樑書"},
	{Preferred: "兒童小說"},
	{Preferred: "童話"},
	{Preferred: "漫畫"},
	{Preferred: "傳記"},
	{Preferred: "詩歌"},
	{Preferred: "散文"},
	{Preferred: "科普讀物", Variants: []string{"科學讀物"}},
	{Preferred: "圖鑑"},
	{Preferred: "工具書"},
	{Preferred: "參考書"},
}

var genreEdges = []Edge{
	{From: "繪本", To: "兒童文學", Type: seed.RelationBroader},
	{From: "橋樑書", To: "兒童文學", Type: seed.RelationBroader},
	{From: "兒童小說", To: "兒童文學", Type: seed.RelationBroader},
	{From: "童話", To: "兒童小說", Type: seed.RelationBroader},
	{From: "工具書", To: "參考書", Type: seed.RelationBroader},
	{From: "圖鑑", To: "科普讀物", Type: seed.RelationBroader},
	{From: "漫畫", To: "繪本", Type: seed.RelationRelated},
}

func preferredLabels(terms []Term) []string {
	labels := make([]string, len(terms))
	for i, t := range terms {
		labels[i] = t.Preferred
	}

	return labels
}
