package vocab

import (
	"strconv"
	"strings"

	"github.com/Justin21523/school-library-lms/seed/identity"
)

// Label pools of the rule-based provider. They are process-scoped constant
// data: loaded once, never mutated. The controlled-term pools are the
// preferred labels of the built-in vocabularies, so every sampled term is
// guaranteed to exist in the thesaurus.
var (
	surnameRunes = []rune("陳林黃張李王吳劉蔡楊許鄭謝郭洪曾邱廖賴周葉蘇盧鍾徐彭呂江唐宋方鄒何高潘")
	givenRunes   = []rune("家怡冠承宇宸柏彥子恩佳庭妤瑄婕睿哲昕妍筱涵昀祐瑋翔晴穎璇芷瑜婉婷思品")

	publisherPool = []string{
		"臺灣教育出版社",
		"五南圖書出版",
		"三民書局",
		"時報出版",
		"遠流出版",
		"親子天下",
		"小天下",
		"天下雜誌",
		"康軒文教",
		"翰林出版",
		"聯經出版",
		"大塊文化",
	}

	titleTemplates = []string{
		"國小{subject}教學活動設計（第{edition}版）",
		"圖書館管理實務：{subject}與應用",
		"閱讀素養：從{subject}到{subject2}",
		"科普小百科：{subject}",
		"資訊安全與倫理：{subject}案例解析",
		"{subject}入門：給老師與學生的指南",
		"校園圖書館工作手冊：{subject}篇",
		"學校行政與{subject}：制度、流程與工具",
		"孩子的{subject}練習：從小學到國中",
		"{subject}專題研究：方法與實作",
	}

	// Not a complete classification scheme; it only has to look right in
	// list views and filters.
	classificationPool = []string{
		"028.5",
		"020.7",
		"371.3",
		"410",
		"500",
		"610",
		"800",
		"900",
		"158.2",
		"004",
	}

	alternativeLanguages = []string{"en", "ja"}

	subjectLabels    = preferredLabels(subjectTerms)
	geographicLabels = preferredLabels(geographicTerms)
	genreLabels      = preferredLabels(genreTerms)
)

// RulesProvider is the default, fully reproducible TextProvider: fixed label
// pools plus template substitution, no network, no model downloads. The text
// is not natural prose, but it covers what UI verification needs: long
// titles, punctuation, varied subjects and classification codes.
type RulesProvider struct {
	stream *identity.Stream
}

// NewRulesProvider creates a RulesProvider drawing from the shared stream.
func NewRulesProvider(stream *identity.Stream) *RulesProvider {
	return &RulesProvider{stream: stream}
}

// PersonName returns a surname plus two given-name characters.
func (p *RulesProvider) PersonName() string {
	surname := identity.Pick(p.stream, surnameRunes)
	first := identity.Pick(p.stream, givenRunes)
	second := identity.Pick(p.stream, givenRunes)

	return string(surname) + string(first) + string(second)
}

func (p *RulesProvider) Publisher() string {
	return identity.Pick(p.stream, publisherPool)
}

// Title fills one of the fixed templates. Draw order: subject, second
// subject, edition, template.
func (p *RulesProvider) Title() string {
	subject := identity.Pick(p.stream, subjectLabels)
	subject2 := identity.Pick(p.stream, subjectLabels)
	edition := p.stream.Between(1, 6)
	template := identity.Pick(p.stream, titleTemplates)

	return strings.NewReplacer(
		"{subject2}", subject2,
		"{subject}", subject,
		"{edition}", strconv.Itoa(edition),
	).Replace(template)
}

func (p *RulesProvider) Classification() string {
	return identity.Pick(p.stream, classificationPool)
}

// LanguageCode is zh-TW most of the time, with a thin slice of other codes
// so language filters have something to show.
func (p *RulesProvider) LanguageCode() string {
	if p.stream.Chance(0.08) {
		return identity.Pick(p.stream, alternativeLanguages)
	}

	return "zh-TW"
}

func (p *RulesProvider) SubjectTerms(k int) []string {
	return sampleLabels(p.stream, subjectLabels, k)
}

func (p *RulesProvider) GeographicTerms(k int) []string {
	return sampleLabels(p.stream, geographicLabels, k)
}

func (p *RulesProvider) GenreTerms(k int) []string {
	return sampleLabels(p.stream, genreLabels, k)
}

func sampleLabels(stream *identity.Stream, pool []string, k int) []string {
	if k < 1 {
		k = 1
	}

	return identity.Sample(stream, pool, k)
}

var _ TextProvider = (*RulesProvider)(nil)
