package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

// Strategy weights, in decreasing order of trust. The highest-scored
// non-empty candidate wins.
const (
	weightFirstSentence = 3.5
	weightThemePattern  = 3.0
	weightCategory      = 2.5
	weightClustering    = 2.0
	weightCoreContent   = 1.5
	weightFallback      = 0.1
)

// Theme-introduction phrasings, most specific first. The first matching
// pattern wins, so ordering is significant.
var themePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(.{5,30})では「(.{5,25})」と「(.{5,25})」`),
	regexp.MustCompile(`(.{5,30})では「(.{5,25})」`),
	regexp.MustCompile(`(.{5,30})では『(.{5,25})』`),
	regexp.MustCompile(`「(.{5,30})の(.{5,25})」`),
	regexp.MustCompile(`『(.{5,30})の(.{5,25})』`),
	regexp.MustCompile(`(.{5,25})について[は話し説明考え解説]`),
	regexp.MustCompile(`(.{5,25})とは[^ぁ-ん]{0,10}`),
	regexp.MustCompile(`(.{5,25})を[考え説明解説検討分析]`),
	regexp.MustCompile(`(.{5,25})に関して`),
	regexp.MustCompile(`(.{5,25})における`),
	regexp.MustCompile(`重要なのは(.{5,25})`),
	regexp.MustCompile(`ポイントは(.{5,25})`),
	regexp.MustCompile(`「(.{5,30})」[とという]`),
	regexp.MustCompile(`『(.{5,30})』[とという]`),
	regexp.MustCompile(`(.{5,25})の[問題課題効果方法手順解説説明]`),
}

var (
	reSentenceSplit = regexp.MustCompile(`[。．！？\n]`)
	reObjectNoun    = regexp.MustCompile(`([ァ-ヶー一-龯A-Za-z]{2,10})を`)
	reSubjectPred   = []*regexp.Regexp{
		regexp.MustCompile(`([ぁ-んァ-ヶー一-龯]{2,8})[はが]([^。]{5,20})`),
		regexp.MustCompile(`([ぁ-んァ-ヶー一-龯]{2,8})を([ぁ-んァ-ヶー一-龯]{2,8})`),
		regexp.MustCompile(`([ぁ-んァ-ヶー一-龯]{2,8})という([ぁ-んァ-ヶー一-龯]{2,8})`),
	}
	meaninglessFragments = []string{"このシーン", "そうですね", "わかる", "ですね", "ます", "です"}

	reStudentName = regexp.MustCompile(`[ぁ-んー]+くん`)
	reTechTerm    = regexp.MustCompile(`(?i)API|プログラミング|システム|アプリ|開発|技術`)
	reBizTerm     = regexp.MustCompile(`(?i)マーケティング|戦略|営業|集客|SEO|ビジネス|SNS`)
)

// TitleGenerator composes a memo title from independent strategies.
type TitleGenerator struct {
	rules   *rules.RuleSet
	persons *personExtractor
	english *regexp.Regexp
	common  map[string]struct{}
	now     func() time.Time
}

func NewTitleGenerator(rs *rules.RuleSet, persons *personExtractor) *TitleGenerator {
	alts := make([]string, 0, len(rs.UniversalEnglish)+1)
	alts = append(alts, `[A-Z][a-z]+`)
	for _, w := range rs.UniversalEnglish {
		alts = append(alts, regexp.QuoteMeta(w))
	}
	return &TitleGenerator{
		rules:   rs,
		persons: persons,
		english: regexp.MustCompile(strings.Join(alts, "|")),
		common:  stringSet(rs.CommonWords),
		now:     time.Now,
	}
}

// Generate never fails: the timestamp fallback guarantees a non-empty title.
func (g *TitleGenerator) Generate(content string, category models.CategoryResult) models.TitleResult {
	var candidates []models.TitleCandidate

	add := func(method, title string, score float64) {
		if title != "" {
			candidates = append(candidates, models.TitleCandidate{
				Title: title, Method: method, Score: score,
			})
		}
	}

	add("first_sentence", g.firstSentenceTitle(content), weightFirstSentence)
	add("theme_pattern", g.themeTitle(content), weightThemePattern)
	add("category_specific", g.categoryTitle(content, category.Name), weightCategory)
	add("word_clustering", g.clusterTitle(content), weightClustering)
	add("core_content", g.coreTitle(content), weightCoreContent)

	if len(candidates) == 0 {
		return models.TitleResult{
			Title:      "メモ_" + g.now().Format("0102_1504"),
			Method:     "fallback",
			Confidence: weightFallback,
		}
	}

	best := 0
	for i, c := range candidates {
		if c.Score > candidates[best].Score {
			best = i
		}
	}
	alternatives := make([]models.TitleCandidate, 0, len(candidates)-1)
	for i, c := range candidates {
		if i != best {
			alternatives = append(alternatives, c)
		}
	}
	return models.TitleResult{
		Title:        candidates[best].Title,
		Method:       candidates[best].Method,
		Alternatives: alternatives,
		Confidence:   candidates[best].Score / weightFirstSentence,
	}
}

// firstSentenceTitle composes from the first sentence using whichever of
// {person, entity, action, target} it contains.
func (g *TitleGenerator) firstSentenceTitle(content string) string {
	first := g.firstMeaningfulSentence(content)
	if first == "" {
		return ""
	}

	var person string
	if names := g.persons.ExtractPersonNames(first); len(names) > 0 {
		person = names[0]
	}
	entity := g.firstEntity(first)
	action := g.firstAction(first)
	target := g.firstTarget(first, action)
	if target == entity {
		target = ""
	}

	switch {
	case person != "" && action != "" && target != "":
		return cleanTitle(fmt.Sprintf("%sとの%s%s録", person, target, action), g.rules.TitleMaxRunes)
	case person != "" && action != "":
		return cleanTitle(fmt.Sprintf("%sとの%s記録", person, action), g.rules.TitleMaxRunes)
	case entity != "" && action != "" && target != "":
		return cleanTitle(fmt.Sprintf("%sの%s%s", entity, target, action), g.rules.TitleMaxRunes)
	case entity != "" && action != "":
		return cleanTitle(fmt.Sprintf("%sの%s方法", entity, action), g.rules.TitleMaxRunes)
	}
	return ""
}

func (g *TitleGenerator) firstMeaningfulSentence(content string) string {
	for _, s := range reSentenceSplit.Split(content, -1) {
		s = strings.TrimSpace(s)
		if len([]rune(s)) < 10 {
			continue
		}
		skip := false
		for _, lead := range g.rules.FillerLeads {
			if strings.HasPrefix(s, lead) {
				skip = true
				break
			}
		}
		if !skip {
			return s
		}
	}
	return ""
}

func (g *TitleGenerator) firstEntity(s string) string {
	blacklist := stringSet(g.rules.CommonKatakana)
	for _, w := range reKatakanaWord.FindAllString(s, -1) {
		if _, generic := blacklist[w]; !generic {
			return w
		}
	}
	if m := g.english.FindString(s); m != "" {
		return m
	}
	return ""
}

func (g *TitleGenerator) firstAction(s string) string {
	for _, a := range g.rules.ActionWords {
		if strings.Contains(s, a) {
			return a
		}
	}
	return ""
}

func (g *TitleGenerator) firstTarget(s, action string) string {
	for _, m := range reObjectNoun.FindAllStringSubmatch(s, -1) {
		noun := m[1]
		if noun != action && !g.isCommon(noun) {
			return noun
		}
	}
	return ""
}

// themeTitle matches explicit topic-introduction phrasings. Multi-group
// matches are merged into an "AのB" phrase.
func (g *TitleGenerator) themeTitle(content string) string {
	for _, re := range themePatterns {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		groups := m[1:]
		theme := mergeThemeGroups(groups)
		if theme != "" && !isMeaningless(theme) {
			return cleanTitle(theme, g.rules.TitleMaxRunes)
		}
	}
	return ""
}

func mergeThemeGroups(groups []string) string {
	for i := range groups {
		groups[i] = strings.TrimSpace(groups[i])
	}
	switch {
	case len(groups) == 3 && groups[0] != "" && groups[1] != "" && groups[2] != "":
		theme := groups[0] + "の" + groups[1] + "と" + groups[2]
		if len([]rune(theme)) > 30 {
			theme = groups[0] + "の" + groups[1]
		}
		return theme
	case len(groups) >= 2 && groups[0] != "" && groups[1] != "":
		first, second := groups[0], groups[1]
		if len([]rune(first)) > 3 && len([]rune(second)) > 3 {
			theme := first + "の" + second
			if len([]rune(theme)) > 30 {
				if len([]rune(second)) < len([]rune(first)) {
					return second
				}
				return first
			}
			return theme
		}
		if len([]rune(first)) > len([]rune(second)) {
			return first
		}
		return second
	default:
		for _, grp := range groups {
			if len([]rune(grp)) > 2 && !isMeaningless(grp) {
				return grp
			}
		}
	}
	return ""
}

func isMeaningless(phrase string) bool {
	for _, m := range meaninglessFragments {
		if strings.Contains(phrase, m) {
			return true
		}
	}
	return false
}

// categoryTitle applies per-category templates.
func (g *TitleGenerator) categoryTitle(content, category string) string {
	switch category {
	case "education":
		switch {
		case strings.Contains(content, "対句法") && strings.Contains(content, "リズム"):
			return "対句法とリズム分析"
		case strings.Contains(content, "聴覚") && strings.Contains(content, "五感"):
			return "聴覚と五感の学習"
		case strings.Contains(content, "ひっかけ") && strings.Contains(content, "問題"):
			return "ひっかけ問題の指導"
		case reStudentName.MatchString(content):
			return "授業記録と生徒指導"
		case strings.Contains(content, "指導"):
			return "教育指導メモ"
		default:
			return "教育関連記録"
		}
	case "tech":
		entities := g.entities(content)
		techTerms := reTechTerm.FindAllString(content, -1)
		switch {
		case len(entities) >= 2:
			return cleanTitle(entities[0]+"と"+entities[1]+"の開発", g.rules.TitleMaxRunes)
		case len(entities) == 1 && len(techTerms) > 0:
			return cleanTitle(entities[0]+techTerms[0], g.rules.TitleMaxRunes)
		case len(entities) == 1:
			return cleanTitle(entities[0]+"開発メモ", g.rules.TitleMaxRunes)
		case len(techTerms) > 0:
			return cleanTitle(techTerms[0]+"に関する技術メモ", g.rules.TitleMaxRunes)
		default:
			return "技術関連メモ"
		}
	case "business", "media":
		entities := g.entities(content)
		bizTerms := reBizTerm.FindAllString(content, -1)
		switch {
		case len(entities) >= 1 && len(bizTerms) > 0:
			return cleanTitle(entities[0]+bizTerms[0], g.rules.TitleMaxRunes)
		case len(entities) >= 1:
			return cleanTitle(entities[0]+"ビジネス戦略", g.rules.TitleMaxRunes)
		case len(bizTerms) > 0:
			return cleanTitle(bizTerms[0]+"戦略メモ", g.rules.TitleMaxRunes)
		default:
			return "ビジネス関連メモ"
		}
	case "ideas":
		if entities := g.entities(content); len(entities) > 0 {
			return cleanTitle(entities[0]+"アイデア", g.rules.TitleMaxRunes)
		}
		return "アイデア・企画メモ"
	}
	return ""
}

// clusterTitle builds from proper-noun entities and frequent content words.
func (g *TitleGenerator) clusterTitle(content string) string {
	entities := g.entities(content)

	// Scan tokens in text order so candidate selection is deterministic.
	words := reJapaneseWord.FindAllString(content, -1)
	freq := map[string]int{}
	for _, w := range words {
		freq[w]++
	}
	actions := stringSet(g.rules.ActionWords)
	picked := map[string]struct{}{}
	var representative []string
	for _, w := range words {
		if _, dup := picked[w]; dup {
			continue
		}
		_, isAction := actions[w]
		if (freq[w] >= 2 && len([]rune(w)) > 2 && !g.isCommon(w)) || isAction {
			picked[w] = struct{}{}
			representative = append(representative, w)
		}
	}

	switch {
	case len(entities) >= 2:
		return cleanTitle(entities[0]+"と"+entities[1], g.rules.TitleMaxRunes)
	case len(entities) == 1 && len(representative) >= 1:
		return cleanTitle(entities[0]+representative[0], g.rules.TitleMaxRunes)
	case len(entities) == 1:
		return cleanTitle(entities[0]+"について", g.rules.TitleMaxRunes)
	case len(representative) >= 2:
		return cleanTitle(representative[0]+"と"+representative[1], g.rules.TitleMaxRunes)
	case len(representative) == 1:
		return cleanTitle(representative[0]+"に関して", g.rules.TitleMaxRunes)
	}
	return ""
}

// coreTitle scans past greetings and questions for a subject-predicate pair.
func (g *TitleGenerator) coreTitle(content string) string {
	for _, sentence := range reSentenceSplit.Split(content, -1) {
		sentence = strings.TrimSpace(sentence)
		if len([]rune(sentence)) <= 15 ||
			strings.HasSuffix(sentence, "ですか？") ||
			strings.HasSuffix(sentence, "だろうか？") {
			continue
		}
		skip := false
		for _, lead := range g.rules.FillerLeads {
			if strings.HasPrefix(sentence, lead) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		if core := g.sentenceCore(sentence); core != "" {
			return core
		}
	}
	return ""
}

func (g *TitleGenerator) sentenceCore(sentence string) string {
	for _, re := range reSubjectPred {
		if m := re.FindStringSubmatch(sentence); m != nil {
			subject, predicate := m[1], m[2]
			if len([]rune(subject)) > 2 && len([]rune(predicate)) > 2 {
				p := []rune(predicate)
				if len(p) > 6 {
					p = p[:6]
				}
				return cleanTitle(subject+"の"+string(p), g.rules.TitleMaxRunes)
			}
		}
	}
	for _, w := range reSimpleTag.FindAllString(sentence, -1) {
		if !g.isCommon(w) {
			return w
		}
	}
	return ""
}

// entities extracts proper nouns: katakana words minus the generic blacklist,
// then known English product names and capitalized words.
func (g *TitleGenerator) entities(content string) []string {
	blacklist := stringSet(g.rules.CommonKatakana)
	seen := map[string]struct{}{}
	var out []string
	for _, w := range reKatakanaWord.FindAllString(content, -1) {
		if _, generic := blacklist[w]; generic {
			continue
		}
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	for _, w := range g.english.FindAllString(content, -1) {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// KeyTerms exposes the entity extractor for summary key-term generation.
func (g *TitleGenerator) KeyTerms(content string, limit int) []string {
	terms := g.entities(content)
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

func (g *TitleGenerator) isCommon(word string) bool {
	_, ok := g.common[word]
	return ok
}
