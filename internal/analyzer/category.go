package analyzer

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

// Classifier scores memo text against the configured category tables.
// Special-case override rules run first and short-circuit with confidence 1.0;
// their order is load-bearing (person-meeting before priority keywords before
// the bare-AI disambiguation) and must not be reordered.
type Classifier struct {
	rules    *rules.RuleSet
	patterns map[string][]*regexp.Regexp
	persons  *personExtractor
}

func NewClassifier(rs *rules.RuleSet, persons *personExtractor) *Classifier {
	c := &Classifier{
		rules:    rs,
		patterns: map[string][]*regexp.Regexp{},
		persons:  persons,
	}
	for _, cat := range rs.Categories {
		for _, src := range cat.Patterns {
			re, err := regexp.Compile(src)
			if err != nil {
				log.WithFields(log.Fields{"category": cat.Name, "pattern": src}).
					Warn("Skipping invalid category pattern")
				continue
			}
			c.patterns[cat.Name] = append(c.patterns[cat.Name], re)
		}
	}
	return c
}

// Classify never fails: absence of signal degrades to the default category at
// confidence 0.1.
func (c *Classifier) Classify(content string) models.CategoryResult {
	if rule, category := c.specialRule(content); rule != "" {
		return models.CategoryResult{
			Name:        category,
			Confidence:  1.0,
			SpecialRule: rule,
		}
	}

	lower := strings.ToLower(content)
	scores := map[string]float64{}
	for _, cat := range c.rules.Categories {
		var s float64
		weight := cat.PatternWeight
		if weight == 0 {
			weight = 3
		}
		for _, re := range c.patterns[cat.Name] {
			if re.MatchString(content) {
				s += weight
			}
		}
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				s++
			}
		}
		if s > 0 {
			scores[cat.Name] = s
		}
	}

	if len(scores) == 0 {
		return models.CategoryResult{Name: c.rules.DefaultCategory, Confidence: 0.1}
	}

	// Argmax with declaration-order tie break.
	best := ""
	bestScore := 0.0
	for _, cat := range c.rules.Categories {
		if s, ok := scores[cat.Name]; ok && s > bestScore {
			best = cat.Name
			bestScore = s
		}
	}

	denom := float64(len(strings.Fields(content))) * c.rules.NormalizationConstant
	if denom < 1 {
		denom = 1
	}
	confidence := bestScore / denom
	if confidence > 1 {
		confidence = 1
	}
	return models.CategoryResult{Name: best, Confidence: confidence, Scores: scores}
}

// specialRule returns the matched rule name and forced category, or "".
func (c *Classifier) specialRule(content string) (rule, category string) {
	if len(c.persons.ExtractPersonNames(content)) > 0 &&
		containsAny(content, c.rules.MeetingKeywords) {
		return "person_meeting", c.rules.PersonMeetingCategory
	}
	if containsAny(content, c.rules.BusinessPriorityKeywords) {
		return "business_priority", c.rules.BusinessCategory
	}
	if containsAny(content, c.rules.TechPriorityKeywords) {
		return "tech_priority", c.rules.TechCategory
	}
	if strings.Contains(content, "AI") {
		if containsAny(content, c.rules.AIBusinessActions) {
			return "ai_business_context", c.rules.BusinessCategory
		}
		if containsAny(content, c.rules.AITechActions) {
			return "ai_tech_context", c.rules.TechCategory
		}
	}
	return "", ""
}
