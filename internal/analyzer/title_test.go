package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

func newTestTitleGenerator() *TitleGenerator {
	rs := rules.Default()
	persons := newPersonExtractor(rs.Honorifics, rs.PersonNameExcludes)
	return NewTitleGenerator(rs, persons)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing particle", "国語の授業を", "国語の授業"},
		{"topic suffix", "国語の授業について", "国語の授業"},
		{"bracket pair", "「対句法の分析」", "対句法の分析"},
		{"quoted pair collapses", "「対句法」と「リズム」", "対句法とリズム"},
		{"already clean", "Claude開発メモ", "Claude開発メモ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanTitle(tt.input, 30))
		})
	}
}

func TestCleanTitle_TruncatesAtBudget(t *testing.T) {
	long := strings.Repeat("長", 40)

	got := cleanTitle(long, 30)

	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 30)
}

func TestTitleGenerator_CategorySpecific(t *testing.T) {
	g := newTestTitleGenerator()

	tests := []struct {
		name     string
		content  string
		category string
		want     string
	}{
		{"education fixed pair", "対句法とリズムの話", "education", "対句法とリズム分析"},
		{"education default", "なにもない", "education", "教育関連記録"},
		{"tech no signal", "なにもない", "tech", "技術関連メモ"},
		{"ideas default", "なにもない", "ideas", "アイデア・企画メモ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.categoryTitle(tt.content, tt.category))
		})
	}
}

func TestTitleGenerator_ThemePattern(t *testing.T) {
	g := newTestTitleGenerator()

	got := g.themeTitle("今回の解説資料では「比喩表現の種類」と「対句法の効果測定」を扱います")

	require.NotEmpty(t, got)
	assert.Contains(t, got, "比喩表現の種類")
}

func TestTitleGenerator_FirstSentence_PersonMeeting(t *testing.T) {
	g := newTestTitleGenerator()

	got := g.firstSentenceTitle("山田さんと新規事業を相談した。詳細は後日。")

	require.NotEmpty(t, got)
	assert.Contains(t, got, "山田")
}

func TestTitleGenerator_FallbackTimestamp(t *testing.T) {
	g := newTestTitleGenerator()

	result := g.Generate("あ", models.CategoryResult{Name: "general"})

	assert.Equal(t, "fallback", result.Method)
	assert.True(t, strings.HasPrefix(result.Title, "メモ_"))
	assert.InDelta(t, 0.1, result.Confidence, 0.001)
}

func TestTitleGenerator_PicksHighestWeight(t *testing.T) {
	g := newTestTitleGenerator()

	// Both the first-sentence strategy and category templates can fire here;
	// the first-sentence strategy must win on weight.
	result := g.Generate("クロールシステムを設計して運用を始めた。", models.CategoryResult{Name: "tech"})

	assert.Equal(t, "first_sentence", result.Method)
	assert.NotEmpty(t, result.Alternatives)
}

func TestPersonExtractor_Deterministic(t *testing.T) {
	rs := rules.Default()
	p := newPersonExtractor(rs.Honorifics, rs.PersonNameExcludes)

	content := "田中さんと佐藤氏に相談。皆さんにも共有。田中さん経由で確定。"

	first := p.ExtractPersonNames(content)
	second := p.ExtractPersonNames(content)

	assert.Equal(t, []string{"田中", "佐藤"}, first, "excluded fragments and duplicates must not appear")
	assert.Equal(t, first, second, "extraction must be stable across call sites")
}
