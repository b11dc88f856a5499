package analyzer

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

// Tag priority buckets. The merge step walks buckets in this order so
// curated entities always precede generic frequency hits.
const (
	bucketPriority = iota
	bucketCategory
	bucketPlain
)

type taggedCandidate struct {
	bucket int
	tag    string
}

// TagGenerator runs six independent extraction layers and merges their
// candidates into a capped, deduplicated, priority-ordered tag list. A
// failure in any single layer is logged and swallowed; the remaining layers
// still contribute.
type TagGenerator struct {
	rules *rules.RuleSet
}

func NewTagGenerator(rs *rules.RuleSet) *TagGenerator {
	return &TagGenerator{rules: rs}
}

func (g *TagGenerator) Generate(content string, category models.CategoryResult) models.TagResult {
	var candidates []taggedCandidate

	layers := []struct {
		name string
		fn   func(string, string) []taggedCandidate
	}{
		{"priority_entities", g.priorityEntities},
		{"category_base", g.categoryBase},
		{"actions", g.labelLayer(g.rules.ActionTags)},
		{"emotions", g.labelLayer(g.rules.EmotionTags)},
		{"content_types", g.labelLayer(g.rules.ContentTypeTags)},
		{"frequent_terms", g.frequentTerms},
	}
	for _, layer := range layers {
		candidates = append(candidates, g.runLayer(layer.name, layer.fn, content, category.Name)...)
	}

	tags := g.merge(candidates)
	if len(tags) == 0 {
		return models.TagResult{Tags: g.fallback(content, category.Name), Method: "fallback"}
	}
	return models.TagResult{Tags: tags, Method: "6-layer"}
}

func (g *TagGenerator) runLayer(name string, fn func(string, string) []taggedCandidate, content, category string) (out []taggedCandidate) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{"layer": name, "panic": r}).Warn("Tag layer failed, skipping")
			out = nil
		}
	}()
	return fn(content, category)
}

// Layer 1: curated per-category entity tables, the universal tool table, and
// capitalized English words (all-caps 3-4 letter acronyms excluded).
func (g *TagGenerator) priorityEntities(content, category string) []taggedCandidate {
	var out []taggedCandidate
	if cat, ok := g.rules.Category(category); ok {
		for _, e := range cat.PriorityEntities {
			if containsAny(content, e.Patterns) {
				out = append(out, taggedCandidate{bucketPriority, e.Canonical})
			}
		}
	}
	for _, e := range g.rules.UniversalEntities {
		if containsAny(content, e.Patterns) {
			out = append(out, taggedCandidate{bucketPriority, e.Canonical})
		}
	}
	for _, w := range reCapitalizedEN.FindAllString(content, -1) {
		if len(w) >= 4 && !reAllCapsShort.MatchString(w) {
			out = append(out, taggedCandidate{bucketPriority, w})
		}
	}
	return out
}

// Layer 2: per-category tag vocabulary, gated on trigger keywords.
func (g *TagGenerator) categoryBase(content, category string) []taggedCandidate {
	cat, ok := g.rules.Category(category)
	if !ok {
		return nil
	}
	var out []taggedCandidate
	for _, bt := range cat.BaseTags {
		if containsAny(content, bt.Triggers) {
			out = append(out, taggedCandidate{bucketCategory, bt.Label})
		}
	}
	return out
}

// Layers 3-5 share the keyword-group shape.
func (g *TagGenerator) labelLayer(groups []rules.LabelGroup) func(string, string) []taggedCandidate {
	return func(content, _ string) []taggedCandidate {
		var out []taggedCandidate
		for _, grp := range groups {
			if containsAny(content, grp.Triggers) {
				out = append(out, taggedCandidate{bucketPlain, grp.Label})
			}
		}
		return out
	}
}

// Layer 6: Japanese tokens of length >=3 occurring at least twice, excluding
// all-hiragana runs (particle chains).
func (g *TagGenerator) frequentTerms(content, _ string) []taggedCandidate {
	words := reJapaneseWord.FindAllString(content, -1)
	counts := map[string]int{}
	for _, w := range words {
		counts[w]++
	}
	emitted := map[string]struct{}{}
	var out []taggedCandidate
	for _, w := range words {
		if counts[w] < 2 || len([]rune(w)) < 3 || reAllHiragana.MatchString(w) {
			continue
		}
		if _, ok := emitted[w]; ok {
			continue
		}
		emitted[w] = struct{}{}
		out = append(out, taggedCandidate{bucketPlain, w})
	}
	return out
}

// merge walks buckets in priority order, prefixes "#", deduplicates keeping
// first-seen order, and caps the list.
func (g *TagGenerator) merge(candidates []taggedCandidate) []string {
	max := g.rules.MaxTags
	if max <= 0 {
		max = 12
	}
	seen := map[string]struct{}{}
	var out []string
	for _, bucket := range []int{bucketPriority, bucketCategory, bucketPlain} {
		for _, c := range candidates {
			if c.bucket != bucket || len([]rune(c.tag)) < 2 {
				continue
			}
			tag := "#" + c.tag
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
			if len(out) == max {
				return out
			}
		}
	}
	return out
}

// fallback is the simpler curated-term extractor used when all six layers
// come up empty.
func (g *TagGenerator) fallback(content, category string) []string {
	cat, ok := g.rules.Category(category)
	if !ok {
		return []string{"#メモ"}
	}
	lower := strings.ToLower(content)
	seen := map[string]struct{}{}
	var out []string
	for _, term := range cat.FallbackTerms {
		if strings.Contains(content, term) || strings.Contains(lower, strings.ToLower(term)) {
			if _, dup := seen[term]; !dup {
				seen[term] = struct{}{}
				out = append(out, "#"+term)
			}
		}
	}
	if len(out) == 0 {
		out = []string{"#メモ"}
	}
	return out
}
