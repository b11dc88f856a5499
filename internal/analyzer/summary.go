package analyzer

import (
	"regexp"
	"strings"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

var (
	reHeading2     = regexp.MustCompile(`(?m)^##\s+(.+)$`)
	reParagraphCut = regexp.MustCompile(`\n\s*\n`)
	reEntityAction = regexp.MustCompile(`([ぁ-んァ-ヶー一-龯A-Za-z]{2,12})(?:を|で)([ぁ-んァ-ヶー一-龯A-Za-z]{2,12})(?:する|した|します|できる)`)
)

// SummaryGenerator produces 3-6 bullet-point highlights plus key terms.
// Points come from level-2 headings, long paragraphs and entity-action
// phrases, deduplicated by lexical overlap; generic filler pads the list when
// fewer than the minimum survive.
type SummaryGenerator struct {
	rules  *rules.RuleSet
	titles *TitleGenerator
}

func NewSummaryGenerator(rs *rules.RuleSet, titles *TitleGenerator) *SummaryGenerator {
	return &SummaryGenerator{rules: rs, titles: titles}
}

func (g *SummaryGenerator) Generate(content string) models.Summary {
	var candidates []string
	candidates = append(candidates, g.headingPoints(content)...)
	candidates = append(candidates, g.paragraphPoints(content)...)
	candidates = append(candidates, g.keywordPoints(content)...)

	points := dedupeByOverlap(candidates)

	maxPoints := g.rules.MaxSummaryPoints
	if maxPoints <= 0 {
		maxPoints = 6
	}
	if len(points) > maxPoints {
		points = points[:maxPoints]
	}

	minPoints := g.rules.MinSummaryPoints
	if minPoints <= 0 {
		minPoints = 3
	}
	for i := 0; len(points) < minPoints && i < len(g.rules.SummaryFillers); i++ {
		points = append(points, g.rules.SummaryFillers[i])
	}

	maxTerms := g.rules.MaxKeyTerms
	if maxTerms <= 0 {
		maxTerms = 5
	}
	return models.Summary{
		Points:   points,
		KeyTerms: g.titles.KeyTerms(content, maxTerms),
	}
}

func (g *SummaryGenerator) headingPoints(content string) []string {
	var out []string
	for _, m := range reHeading2.FindAllStringSubmatch(content, -1) {
		heading := strings.TrimSpace(m[1])
		if heading == "" {
			continue
		}
		out = append(out, "「"+heading+"」の具体的な解説と実践方法")
		if len(out) == 3 {
			break
		}
	}
	return out
}

func (g *SummaryGenerator) paragraphPoints(content string) []string {
	var out []string
	for _, para := range reParagraphCut.Split(content, -1) {
		para = strings.TrimSpace(para)
		if len([]rune(para)) < 100 {
			continue
		}
		first := strings.TrimSpace(reSentenceSplit.Split(para, 2)[0])
		if len([]rune(first)) <= 20 {
			continue
		}
		runes := []rune(first)
		if len(runes) > 50 {
			first = string(runes[:50]) + "..."
		}
		out = append(out, first)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func (g *SummaryGenerator) keywordPoints(content string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range reEntityAction.FindAllStringSubmatch(content, -1) {
		entity, action := m[1], m[2]
		point := entity + "の" + action
		if _, ok := seen[point]; ok {
			continue
		}
		seen[point] = struct{}{}
		out = append(out, point)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// dedupeByOverlap drops a candidate when more than 70% of its words already
// appear in an earlier point.
func dedupeByOverlap(candidates []string) []string {
	var kept []string
	var keptWords []map[string]struct{}
	for _, c := range candidates {
		words := tokenSet(reTitleToken.FindAllString(c, -1), nil)
		dup := false
		for _, prev := range keptWords {
			if len(words) == 0 {
				break
			}
			shared := 0
			for w := range words {
				if _, ok := prev[w]; ok {
					shared++
				}
			}
			if float64(shared)/float64(len(words)) > 0.7 {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, c)
			keptWords = append(keptWords, words)
		}
	}
	return kept
}
