package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

// --- Mock corpus ---
type mockCorpus struct {
	docs []models.Document
	err  error
}

func (m *mockCorpus) Documents() ([]models.Document, error) {
	return m.docs, m.err
}

// --- End mock corpus ---

func newTestRelationFinder() *RelationFinder {
	return NewRelationFinder(rules.Default().Relations)
}

func TestRelationFinder_ImportantKeywordBonusPassesTechThreshold(t *testing.T) {
	f := newTestRelationFinder()

	memo := "ClaudeとGitHubを使ってPythonのシステムを組む作業メモ"
	corpus := &mockCorpus{docs: []models.Document{
		{
			Path: "/vault/1_Tech/API設計メモ.md",
			Name: "API設計メモ",
			Body: "ClaudeでGitHubのPythonシステムを整理したときの記録",
		},
		{
			Path: "/vault/4_General/買い物リスト.md",
			Name: "買い物リスト",
			Body: "牛乳と卵を買う",
		},
	}}

	result := f.Find(memo, "Claude開発メモ", corpus)

	require.Len(t, result.Relations, 1)
	rel := result.Relations[0]
	assert.Equal(t, "API設計メモ", rel.DisplayName)
	assert.GreaterOrEqual(t, rel.Score, 0.7, "three shared important keywords earn the capped bonus")
	assert.Equal(t, 5, rel.StarRating)
	assert.Equal(t, models.RelationTechnical, rel.RelationType)
	assert.Equal(t, 1, result.PassedCount)
	assert.Equal(t, 2, result.ScannedCount)
}

func TestRelationFinder_ProgramDocsExcludedBeforeScoring(t *testing.T) {
	f := newTestRelationFinder()

	corpus := &mockCorpus{docs: []models.Document{
		{
			Path: "/vault/project/README.md",
			Name: "README",
			Body: "## Install\n\npip install foo\nUsage: see the API reference. License: MIT.",
		},
		{
			Path: "/vault/notes/授業メモ.md",
			Name: "授業メモ",
			Body: "読解の授業記録",
		},
	}}

	result := f.Find("読解の授業記録をまとめる", "授業メモまとめ", corpus)

	assert.Equal(t, 1, result.ScannedCount, "README must not be scored at all")
	for _, rel := range result.Relations {
		assert.NotEqual(t, "README", rel.DisplayName)
	}
}

func TestRelationFinder_TopThreeByScore(t *testing.T) {
	f := newTestRelationFinder()

	shared := "ClaudeとGitHubとPythonとObsidianとMCPのプログラミング作業"
	docs := make([]models.Document, 0, 5)
	for _, name := range []string{"メモA", "メモB", "メモC", "メモD", "メモE"} {
		docs = append(docs, models.Document{
			Path: "/vault/" + name + ".md",
			Name: name,
			Body: shared,
		})
	}

	result := f.Find(shared, "プログラミング作業", &mockCorpus{docs: docs})

	assert.Len(t, result.Relations, 3, "relation list is capped at the top three")
	assert.Equal(t, 5, result.PassedCount)
	for i := 1; i < len(result.Relations); i++ {
		assert.GreaterOrEqual(t, result.Relations[i-1].Score, result.Relations[i].Score)
	}
}

func TestRelationFinder_CorpusErrorIsReported(t *testing.T) {
	f := newTestRelationFinder()

	result := f.Find("内容", "タイトル", &mockCorpus{err: errors.New("walk failed")})

	assert.Empty(t, result.Relations)
	assert.Equal(t, "walk failed", result.Error)
}

func TestStarRating_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0.75, 5},
		{0.55, 4},
		{0.35, 3},
		{0.25, 2},
		{0.05, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, starRating(tt.score))
	}
}

func TestPreview_Truncates(t *testing.T) {
	long := strings.Repeat("本", 150)

	got := preview(long, 100)

	assert.Equal(t, 100+len("..."), len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}
