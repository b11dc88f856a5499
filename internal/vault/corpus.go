// Package vault handles the Obsidian vault on disk: corpus enumeration for
// relation scoring, note writing with front matter and cross-reference links,
// and inbox organization.
package vault

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Corpus enumerates markdown notes under the vault root. It satisfies
// analyzer.Corpus. Each Documents call re-walks the tree so a long-running
// server sees newly saved notes without restart.
type Corpus struct {
	root     string
	maxFiles int // 0 means unbounded
}

func NewCorpus(root string, maxFiles int) *Corpus {
	return &Corpus{root: root, maxFiles: maxFiles}
}

func (c *Corpus) Documents() ([]models.Document, error) {
	return c.DocumentsContext(context.Background())
}

// DocumentsContext walks the vault for .md files, reading each one. Files
// that cannot be read or are not valid UTF-8 after cleanup are skipped, not
// fatal: a single bad note must not break every analysis.
func (c *Corpus) DocumentsContext(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	err := filepath.WalkDir(c.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("Skipping unreadable vault entry")
			return filepath.SkipDir
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != c.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		if c.maxFiles > 0 && len(docs) >= c.maxFiles {
			return filepath.SkipAll
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			log.WithError(readErr).WithField("path", path).Debug("Skipping unreadable note")
			return nil
		}
		body, ok := cleanContent(raw)
		if !ok {
			log.WithField("path", path).Warn("Skipping note with invalid encoding")
			return nil
		}
		docs = append(docs, models.Document{
			Path: path,
			Name: strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Body: body,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// cleanContent strips a UTF-8 BOM and repairs invalid byte sequences.
func cleanContent(raw []byte) (string, bool) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		raw = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}
	s := string(raw)
	return s, utf8.ValidString(s)
}
