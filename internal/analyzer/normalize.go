package analyzer

import (
	"strings"

	"golang.org/x/text/width"

	"memofiler/internal/analyzer/rules"
)

// Normalizer canonicalizes raw memo text before any analysis stage sees it.
// Half-width katakana and full-width Latin are folded to their standard forms,
// then voice-input artifacts (katakana transcriptions of product names) are
// replaced in rule order.
type Normalizer struct {
	subs []rules.Substitution
}

func NewNormalizer(subs []rules.Substitution) *Normalizer {
	return &Normalizer{subs: subs}
}

func (n *Normalizer) Normalize(content string) string {
	s := width.Fold.String(content)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, sub := range n.subs {
		s = strings.ReplaceAll(s, sub.From, sub.To)
	}
	return strings.TrimSpace(s)
}
