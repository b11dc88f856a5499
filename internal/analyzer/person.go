package analyzer

import (
	"regexp"
	"strings"
)

// Person-name detection keys on honorific suffixes. Both the title generator
// and the summary generator call ExtractPersonNames; they must see identical
// results for the same input, so all state here is immutable after
// construction.
type personExtractor struct {
	pattern  *regexp.Regexp
	excludes []string
}

func newPersonExtractor(honorifics, excludes []string) *personExtractor {
	if len(honorifics) == 0 {
		honorifics = []string{"さん", "様", "氏"}
	}
	quoted := make([]string, len(honorifics))
	for i, h := range honorifics {
		quoted[i] = regexp.QuoteMeta(h)
	}
	// Name token: 1-8 kanji/katakana/Latin runes. Hiragana-only fragments are
	// rejected separately since particles would otherwise match.
	p := regexp.MustCompile(`([一-龯ァ-ヶーA-Za-z]{1,8}|[ぁ-ん]{2,4})(` + strings.Join(quoted, "|") + `)`)
	return &personExtractor{pattern: p, excludes: excludes}
}

// ExtractPersonNames returns detected names without honorifics, in first-seen
// order, deduplicated.
func (p *personExtractor) ExtractPersonNames(content string) []string {
	matches := p.pattern.FindAllStringSubmatch(content, -1)
	seen := map[string]struct{}{}
	var names []string
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" || p.excluded(name+m[2]) || p.excluded(name) {
			continue
		}
		if reAllHiragana.MatchString(name) && len([]rune(name)) < 2 {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func (p *personExtractor) excluded(fragment string) bool {
	for _, e := range p.excludes {
		if e != "" && strings.Contains(fragment, e) {
			return true
		}
	}
	return false
}
