package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memofiler/internal/analyzer/rules"
)

func newTestSummaryGenerator() *SummaryGenerator {
	rs := rules.Default()
	persons := newPersonExtractor(rs.Honorifics, rs.PersonNameExcludes)
	return NewSummaryGenerator(rs, NewTitleGenerator(rs, persons))
}

func TestSummaryGenerator_HeadingPoints(t *testing.T) {
	g := newTestSummaryGenerator()

	content := "## 導入の工夫\n\n本文。\n\n## 演習の組み立て\n\n本文。"
	summary := g.Generate(content)

	require.GreaterOrEqual(t, len(summary.Points), 3)
	assert.Equal(t, "「導入の工夫」の具体的な解説と実践方法", summary.Points[0])
	assert.Equal(t, "「演習の組み立て」の具体的な解説と実践方法", summary.Points[1])
}

func TestSummaryGenerator_ParagraphFirstSentence(t *testing.T) {
	g := newTestSummaryGenerator()

	first := "今回の授業では比喩表現の読み取りを段階的に練習させる方針を採用した"
	para := first + "。" + strings.Repeat("補足説明。", 20)
	summary := g.Generate(para)

	require.NotEmpty(t, summary.Points)
	assert.True(t, strings.HasPrefix(summary.Points[0], string([]rune(first)[:10])))
}

func TestSummaryGenerator_PadsToMinimum(t *testing.T) {
	g := newTestSummaryGenerator()

	summary := g.Generate("短いメモ")

	assert.GreaterOrEqual(t, len(summary.Points), 3, "filler points pad short inputs")
}

func TestSummaryGenerator_DeduplicatesOverlappingPoints(t *testing.T) {
	points := dedupeByOverlap([]string{
		"比喩表現の読み取り練習",
		"比喩表現の読み取り練習",
		"別の話題",
	})

	assert.Equal(t, []string{"比喩表現の読み取り練習", "別の話題"}, points)
}

func TestSummaryGenerator_KeyTermsCapped(t *testing.T) {
	g := newTestSummaryGenerator()

	content := "ClaudeとObsidianとNotionとSlackとDockerとReactとVueの比較"
	summary := g.Generate(content)

	assert.LessOrEqual(t, len(summary.KeyTerms), 5)
	assert.Contains(t, summary.KeyTerms, "Claude")
}
