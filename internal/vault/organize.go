package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/analyzer"
)

var excludeFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.DS_Store`),
	regexp.MustCompile(`\.git`),
	regexp.MustCompile(`\.tmp$`),
	regexp.MustCompile(`\.temp$`),
}

// OrganizeReport summarizes one organize run.
type OrganizeReport struct {
	Moved   []MovedFile `json:"moved"`
	Skipped int         `json:"skipped"`
	Errors  []string    `json:"errors"`
}

// MovedFile records a single relocation.
type MovedFile struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Category string `json:"category"`
}

// Organizer files loose notes from source folders into category folders.
// Category comes from existing front matter when present, otherwise from a
// fresh analysis of the note body.
type Organizer struct {
	root      string
	inbox     string
	sources   []string
	pipeline  *analyzer.Pipeline
	folderFor func(string) string
	now       func() time.Time
}

func NewOrganizer(root, inbox string, sources []string, pipeline *analyzer.Pipeline, folderFor func(string) string) *Organizer {
	if len(sources) == 0 {
		sources = []string{inbox}
	}
	return &Organizer{
		root:      root,
		inbox:     inbox,
		sources:   sources,
		pipeline:  pipeline,
		folderFor: folderFor,
		now:       time.Now,
	}
}

// Run moves every unfiled note. Individual failures are collected, not fatal.
func (o *Organizer) Run(ctx context.Context) OrganizeReport {
	report := OrganizeReport{}

	knownFolders := o.categoryFolders()
	for _, src := range o.sources {
		dir := filepath.Join(o.root, src)
		entries, err := collectMarkdown(dir)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", src, err))
			continue
		}
		for _, path := range entries {
			if ctx.Err() != nil {
				report.Errors = append(report.Errors, ctx.Err().Error())
				return report
			}
			if o.alreadyFiled(path, knownFolders) {
				report.Skipped++
				continue
			}
			moved, err := o.organizeFile(ctx, path)
			if err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", filepath.Base(path), err))
				continue
			}
			report.Moved = append(report.Moved, moved)
		}
	}
	return report
}

func (o *Organizer) organizeFile(ctx context.Context, path string) (MovedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return MovedFile{}, err
	}
	content := string(raw)

	category := frontMatterCategory(content)
	if category == "" {
		result := o.pipeline.Analyze(ctx, content, nil, nil)
		if !result.Success {
			return MovedFile{}, fmt.Errorf("analysis failed: %s", result.Error)
		}
		category = result.Category.Name
	}

	destDir := filepath.Join(o.root, o.inbox, o.folderFor(category))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return MovedFile{}, err
	}

	dest := filepath.Join(destDir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		// Name collision: suffix with a timestamp.
		base := strings.TrimSuffix(filepath.Base(path), ".md")
		dest = filepath.Join(destDir, fmt.Sprintf("%s_%s.md", base, o.now().Format("150405")))
	}

	if err := os.Rename(path, dest); err != nil {
		return MovedFile{}, err
	}
	log.WithFields(log.Fields{"from": path, "to": dest, "category": category}).Info("Filed note")
	return MovedFile{From: path, To: dest, Category: category}, nil
}

// alreadyFiled reports whether the note already sits inside a category folder.
func (o *Organizer) alreadyFiled(path string, folders map[string]struct{}) bool {
	rel, err := filepath.Rel(o.root, path)
	if err != nil {
		return false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts[:len(parts)-1] {
		if _, ok := folders[part]; ok {
			return true
		}
	}
	return false
}

func (o *Organizer) categoryFolders() map[string]struct{} {
	out := map[string]struct{}{}
	for _, cat := range o.pipeline.Rules().Categories {
		if cat.Folder != "" {
			out[cat.Folder] = struct{}{}
		}
	}
	out[o.folderFor("")] = struct{}{}
	return out
}

func collectMarkdown(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		for _, re := range excludeFilePatterns {
			if re.MatchString(path) {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	return files, err
}

// frontMatterCategory reads "category:" out of a YAML front matter block, or
// returns "" when there is none.
func frontMatterCategory(content string) string {
	if !strings.HasPrefix(content, "---") {
		return ""
	}
	end := strings.Index(content[3:], "---")
	if end < 0 {
		return ""
	}
	for _, line := range strings.Split(content[3:3+end], "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "category" {
			return strings.Trim(strings.TrimSpace(value), `"'`)
		}
	}
	return ""
}
