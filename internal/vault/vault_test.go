package vault

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memofiler/internal/analyzer"
	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

func writeNote(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCorpus_DiscoversMarkdownOnly(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "notes/メモ1.md", "本文1")
	writeNote(t, root, "notes/メモ2.MD", "本文2")
	writeNote(t, root, "notes/画像.png", "binary")
	writeNote(t, root, ".obsidian/config.md", "settings")

	docs, err := NewCorpus(root, 0).Documents()

	require.NoError(t, err)
	require.Len(t, docs, 2, "only .md files outside dot-directories belong to the corpus")
	names := []string{docs[0].Name, docs[1].Name}
	assert.Contains(t, names, "メモ1")
	assert.Contains(t, names, "メモ2")
}

func TestCorpus_StripsBOM(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a.md", "\xEF\xBB\xBF中身")

	docs, err := NewCorpus(root, 0).Documents()

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "中身", docs[0].Body)
}

func TestCorpus_MaxFilesBound(t *testing.T) {
	root := t.TempDir()
	for _, n := range []string{"a.md", "b.md", "c.md"} {
		writeNote(t, root, n, "本文")
	}

	docs, err := NewCorpus(root, 2).Documents()

	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestWriter_SaveBuildsFrontMatterAndLinks(t *testing.T) {
	root := t.TempDir()
	related := writeNote(t, root, "02_Inbox/1_Tech/既存ノート.md", "# 既存ノート\n\n本文")

	w := NewWriter(root, "02_Inbox", func(string) string { return "1_Tech" }, nil)
	result := models.AnalysisResult{
		Success:  true,
		Category: models.CategoryResult{Name: "tech", Confidence: 0.9},
		Title:    models.TitleResult{Title: "MCPサーバー設計"},
		Tags:     models.TagResult{Tags: []string{"#MCP", "#設計"}},
		Relations: models.RelationResult{Relations: []models.RelatedFile{
			{Path: related, DisplayName: "既存ノート", Score: 0.8, StarRating: 5, RelationType: models.RelationTechnical},
		}},
		Summary: models.Summary{Points: []string{"要点1"}},
	}

	path, err := w.Save(result, "メモ本文")

	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	note := string(raw)

	assert.True(t, strings.HasPrefix(note, "---\n"), "front matter must open the note")
	assert.Contains(t, note, `title: "MCPサーバー設計"`)
	assert.Contains(t, note, "category: tech")
	assert.Contains(t, note, "# MCPサーバー設計")
	assert.Contains(t, note, "**タグ**: #MCP #設計")
	assert.Contains(t, note, "- [[既存ノート]] ★★★★★ (技術関連)")
	assert.Contains(t, note, "メモ本文")

	// Reverse link written into the related note.
	rel, err := os.ReadFile(related)
	require.NoError(t, err)
	assert.Contains(t, string(rel), "## 関連ファイル")
	assert.Contains(t, string(rel), "(相互リンク)")
}

func TestWriter_SanitizesFilename(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root, "02_Inbox", func(string) string { return "4_General" }, nil)

	path, err := w.Save(models.AnalysisResult{
		Title:    models.TitleResult{Title: `危険/な:タイトル?`},
		Category: models.CategoryResult{Name: "general"},
	}, "本文")

	require.NoError(t, err)
	base := filepath.Base(path)
	assert.NotContains(t, base, "/")
	assert.NotContains(t, base, ":")
	assert.NotContains(t, base, "?")
}

func TestOrganizer_FilesNotesByCategory(t *testing.T) {
	root := t.TempDir()
	loose := writeNote(t, root, "02_Inbox/授業メモ.md", "今日の授業で生徒に読解の指導をした。")
	writeNote(t, root, "02_Inbox/1_Tech/整理済み.md", "---\ncategory: tech\n---\n本文")

	rs := rules.Default()
	pipeline := analyzer.New(rs, nil)
	org := NewOrganizer(root, "02_Inbox", nil, pipeline, rs.FolderFor)

	report := org.Run(context.Background())

	require.Empty(t, report.Errors)
	require.Len(t, report.Moved, 1)
	assert.Equal(t, loose, report.Moved[0].From)
	assert.Equal(t, "education", report.Moved[0].Category)
	assert.FileExists(t, report.Moved[0].To)
	assert.Equal(t, 1, report.Skipped, "notes already inside a category folder stay put")
}

func TestOrganizer_FrontMatterCategoryWins(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "02_Inbox/メモ.md", "---\ncategory: ideas\n---\n授業と指導の話")

	rs := rules.Default()
	org := NewOrganizer(root, "02_Inbox", nil, analyzer.New(rs, nil), rs.FolderFor)
	report := org.Run(context.Background())

	require.Len(t, report.Moved, 1)
	assert.Equal(t, "ideas", report.Moved[0].Category, "existing front matter overrides analysis")
	assert.Contains(t, report.Moved[0].To, rs.FolderFor("ideas"))
}
