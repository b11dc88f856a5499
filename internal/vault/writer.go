package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/models"
)

var (
	reUnsafeFilename = regexp.MustCompile(`[<>:"/\\|?*]`)
	reWhitespaceRun  = regexp.MustCompile(`\s+`)
)

// Writer persists analyzed memos as markdown notes: YAML front matter, the
// formatted body, and an Obsidian [[link]] section for related notes.
type Writer struct {
	root      string
	inbox     string                          // subfolder notes land under, e.g. "02_Inbox"
	folderFor func(category string) string    // category to folder mapping
	format    func(content string) string     // body formatter, identity when nil
	now       func() time.Time
}

func NewWriter(root, inbox string, folderFor func(string) string, format func(string) string) *Writer {
	if format == nil {
		format = func(s string) string { return s }
	}
	return &Writer{root: root, inbox: inbox, folderFor: folderFor, format: format, now: time.Now}
}

// Save writes the note and adds reverse links to related files. The returned
// path is the created note.
func (w *Writer) Save(result models.AnalysisResult, content string) (string, error) {
	folder := w.folderFor(result.Category.Name)
	dir := filepath.Join(w.root, w.inbox, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create category folder: %w", err)
	}

	name := fmt.Sprintf("%s_%s.md", w.now().Format("20060102_150405"), safeFilename(result.Title.Title))
	path := filepath.Join(dir, name)

	doc := w.buildMarkdown(result, content)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}

	w.addReverseLinks(path, result.Relations.Relations)
	return path, nil
}

func (w *Writer) buildMarkdown(result models.AnalysisResult, content string) string {
	var b strings.Builder

	tagsJSON, _ := json.Marshal(result.Tags.Tags)
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", result.Title.Title)
	fmt.Fprintf(&b, "category: %s\n", result.Category.Name)
	fmt.Fprintf(&b, "tags: %s\n", tagsJSON)
	fmt.Fprintf(&b, "created: %s\n", w.now().Format(time.RFC3339))
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", result.Title.Title)

	if len(result.Tags.Tags) > 0 {
		fmt.Fprintf(&b, "**タグ**: %s\n\n", strings.Join(result.Tags.Tags, " "))
	}

	if len(result.Relations.Relations) > 0 {
		b.WriteString("## 関連ファイル\n\n")
		for _, rel := range result.Relations.Relations {
			fmt.Fprintf(&b, "- [[%s]] %s %s\n", rel.DisplayName, rel.Stars(), relationComment(rel.RelationType))
		}
		b.WriteString("\n")
	}

	if len(result.Summary.Points) > 0 {
		b.WriteString("## 要点\n\n")
		for _, p := range result.Summary.Points {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	b.WriteString(w.format(content))
	b.WriteString("\n")
	return b.String()
}

// addReverseLinks appends a backlink to each related note. Failures are
// logged per file and never abort the save.
func (w *Writer) addReverseLinks(sourcePath string, relations []models.RelatedFile) {
	sourceName := strings.TrimSuffix(filepath.Base(sourcePath), ".md")
	link := fmt.Sprintf("- [[%s]] (相互リンク)\n", sourceName)

	for _, rel := range relations {
		raw, err := os.ReadFile(rel.Path)
		if err != nil {
			log.WithError(err).WithField("path", rel.Path).Debug("Skipping reverse link")
			continue
		}
		content := string(raw)
		if strings.Contains(content, "[["+sourceName+"]]") {
			continue
		}
		if strings.Contains(content, "## 関連ファイル") {
			content = strings.Replace(content, "## 関連ファイル\n\n", "## 関連ファイル\n\n"+link, 1)
		} else {
			content = strings.TrimRight(content, "\n") + "\n\n## 関連ファイル\n\n" + link
		}
		if err := os.WriteFile(rel.Path, []byte(content), 0o644); err != nil {
			log.WithError(err).WithField("path", rel.Path).Warn("Failed to write reverse link")
		}
	}
}

func relationComment(t models.RelationType) string {
	switch t {
	case models.RelationEducational:
		return "(教育関連)"
	case models.RelationTechnical:
		return "(技術関連)"
	case models.RelationBusiness:
		return "(ビジネス関連)"
	default:
		return "(相互リンク)"
	}
}

func safeFilename(title string) string {
	s := reUnsafeFilename.ReplaceAllString(title, "")
	s = reWhitespaceRun.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		s = "メモ"
	}
	return s
}
