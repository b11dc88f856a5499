package analyzer

import (
	"regexp"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

// Corpus enumerates the existing documents a new memo is compared against.
// Implementations may walk a vault directory, query a store, or serve a
// fixture in tests.
type Corpus interface {
	Documents() ([]models.Document, error)
}

// RelationFinder scores a memo against every corpus document and returns the
// top matches. Scoring is hierarchical: title similarity, shared-tag
// similarity, and content similarity each produce a signal and the maximum
// wins; the pair-type threshold then decides acceptance.
type RelationFinder struct {
	rules            rules.RelationRules
	titleStops       map[string]struct{}
	contentStops     map[string]struct{}
	docFilePatterns  []*regexp.Regexp
	relationKeywords map[models.RelationType][]string
}

func NewRelationFinder(rr rules.RelationRules) *RelationFinder {
	f := &RelationFinder{
		rules:        rr,
		titleStops:   stringSet(rr.TitleStopwords),
		contentStops: stringSet(rr.ContentStopwords),
		relationKeywords: map[models.RelationType][]string{
			models.RelationEducational: {"教育", "指導", "授業"},
			models.RelationTechnical:   {"技術", "API", "システム"},
			models.RelationBusiness:    {"ビジネス", "戦略", "マーケティング"},
		},
	}
	for _, src := range rr.DocFilePatterns {
		re, err := regexp.Compile(src)
		if err != nil {
			log.WithField("pattern", src).Warn("Skipping invalid document filter pattern")
			continue
		}
		f.docFilePatterns = append(f.docFilePatterns, re)
	}
	return f
}

// Find never fails: corpus errors are reported inside the result and leave
// the relation list empty.
func (f *RelationFinder) Find(content, title string, corpus Corpus) models.RelationResult {
	docs, err := corpus.Documents()
	if err != nil {
		log.WithError(err).Warn("Corpus scan failed")
		return models.RelationResult{Error: err.Error()}
	}

	memoTokens := contentTokens(content, f.contentStops)
	memoTitleTokens := titleTokens(title, f.titleStops)
	memoTags := simpleTags(content)

	var passed []models.RelatedFile
	scanned := 0
	for _, doc := range docs {
		if f.isProgramDoc(doc) {
			continue
		}
		scanned++

		score := f.score(content, memoTitleTokens, memoTokens, memoTags, doc)
		if score <= f.threshold(title, doc.Name) {
			continue
		}
		passed = append(passed, models.RelatedFile{
			Path:         doc.Path,
			DisplayName:  doc.Name,
			Score:        score,
			StarRating:   starRating(score),
			RelationType: f.relationType(content, doc.Body),
			Preview:      preview(doc.Body, 100),
		})
	}

	sort.SliceStable(passed, func(i, j int) bool { return passed[i].Score > passed[j].Score })

	max := f.rules.MaxRelations
	if max <= 0 {
		max = 3
	}
	top := passed
	if len(top) > max {
		top = top[:max]
	}
	return models.RelationResult{
		Relations:    top,
		PassedCount:  len(passed),
		ScannedCount: scanned,
	}
}

func (f *RelationFinder) score(memoText string, memoTitle, memoContent, memoTags map[string]struct{}, doc models.Document) float64 {
	var max float64

	titleSim := jaccard(memoTitle, titleTokens(doc.Name, f.titleStops))
	if titleSim > f.rules.TitleGate {
		max = titleSim * f.rules.TitleScale
	}

	tagSim := jaccard(memoTags, simpleTags(doc.Body))
	if tagSim > f.rules.TagGate && tagSim*f.rules.TagScale > max {
		max = tagSim * f.rules.TagScale
	}

	contentSim := jaccard(memoContent, contentTokens(doc.Body, f.contentStops))
	contentSim += f.importantKeywordBonus(memoText, doc.Body)
	if contentSim > 1 {
		contentSim = 1
	}
	if contentSim > max {
		max = contentSim
	}
	return max
}

// importantKeywordBonus rewards curated terms present in both documents:
// 0.3 per shared term, capped at 0.8.
func (f *RelationFinder) importantKeywordBonus(memoText, docBody string) float64 {
	lowerMemo := strings.ToLower(memoText)
	lowerDoc := strings.ToLower(docBody)
	n := 0
	for _, kw := range f.rules.ImportantKeywords {
		lk := strings.ToLower(kw)
		if strings.Contains(lowerMemo, lk) && strings.Contains(lowerDoc, lk) {
			n++
		}
	}
	bonus := 0.3 * float64(n)
	if bonus > 0.8 {
		bonus = 0.8
	}
	return bonus
}

// threshold picks the pair-type acceptance bar: SNS-analysis pairs and tech
// pairs get stricter (lower) bars than the general default.
func (f *RelationFinder) threshold(title1, title2 string) float64 {
	switch {
	case containsAny(title1, f.rules.SNSTitleKeywords) && containsAny(title2, f.rules.SNSTitleKeywords):
		return f.rules.SNSPairThreshold
	case containsAny(title1, f.rules.TechTitleKeywords) && containsAny(title2, f.rules.TechTitleKeywords):
		return f.rules.TechPairThreshold
	default:
		return f.rules.DefaultPairThreshold
	}
}

// isProgramDoc excludes README/LICENSE-style files and anything whose head
// reads like software documentation.
func (f *RelationFinder) isProgramDoc(doc models.Document) bool {
	base := strings.ToLower(doc.Name)
	for _, re := range f.docFilePatterns {
		if re.MatchString(base) || re.MatchString(doc.Path) {
			return true
		}
	}

	headLimit := f.rules.DocHeadBytes
	if headLimit <= 0 {
		headLimit = 500
	}
	head := doc.Body
	if len(head) > headLimit {
		head = head[:headLimit]
	}
	head = strings.ToLower(head)

	limit := f.rules.DocKeywordLimit
	if limit <= 0 {
		limit = 3
	}
	hits := 0
	for _, kw := range f.rules.DocKeywords {
		if strings.Contains(head, strings.ToLower(kw)) {
			hits++
			if hits >= limit {
				return true
			}
		}
	}
	return false
}

func (f *RelationFinder) relationType(content1, content2 string) models.RelationType {
	for _, rt := range []models.RelationType{
		models.RelationEducational,
		models.RelationTechnical,
		models.RelationBusiness,
	} {
		for _, kw := range f.relationKeywords[rt] {
			if strings.Contains(content1, kw) && strings.Contains(content2, kw) {
				return rt
			}
		}
	}
	return models.RelationGeneral
}

func starRating(score float64) int {
	switch {
	case score >= 0.7:
		return 5
	case score >= 0.5:
		return 4
	case score >= 0.3:
		return 3
	case score >= 0.2:
		return 2
	default:
		return 1
	}
}

func preview(body string, maxRunes int) string {
	runes := []rune(strings.TrimSpace(body))
	if len(runes) <= maxRunes {
		return string(runes)
	}
	return string(runes[:maxRunes]) + "..."
}
