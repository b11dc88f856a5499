package analyzer

import (
	"regexp"
	"strings"
)

// Tokenizer regexes. Character classes follow Japanese script ranges:
// hiragana ぁ-ん, katakana ァ-ヶ plus the long-vowel mark ー, kanji 一-龯.
var (
	reTitleToken    = regexp.MustCompile(`[ぁ-んァ-ヶー一-龯A-Za-z]{2,}`)
	reContentToken  = regexp.MustCompile(`[ぁ-んァ-ヶー一-龯]{3,}|[A-Za-z]{2,}`)
	reSimpleTag     = regexp.MustCompile(`[ぁ-んァ-ヶー一-龯]{3,8}`)
	reJapaneseWord  = regexp.MustCompile(`[ぁ-んァ-ヶー一-龯]{2,8}`)
	reKatakanaWord  = regexp.MustCompile(`[ア-ヶー]{3,10}`)
	reCapitalizedEN = regexp.MustCompile(`\b[A-Z][a-zA-Z]{3,15}\b`)
	reAllCapsShort  = regexp.MustCompile(`^[A-Z]{3,4}$`)
	reAllHiragana   = regexp.MustCompile(`^[ぁ-ん]+$`)
)

// titleTokens tokenizes a title for similarity comparison, dropping stopwords.
func titleTokens(title string, stopwords map[string]struct{}) map[string]struct{} {
	return tokenSet(reTitleToken.FindAllString(strings.ToLower(title), -1), stopwords)
}

// contentTokens tokenizes body text for Jaccard comparison.
func contentTokens(content string, stopwords map[string]struct{}) map[string]struct{} {
	return tokenSet(reContentToken.FindAllString(strings.ToLower(content), -1), stopwords)
}

// simpleTags returns Japanese tokens occurring at least twice, a cheap stand-in
// for real tags when comparing corpus documents.
func simpleTags(content string) map[string]struct{} {
	counts := map[string]int{}
	for _, w := range reSimpleTag.FindAllString(content, -1) {
		counts[w]++
	}
	out := map[string]struct{}{}
	for w, c := range counts {
		if c >= 2 {
			out[w] = struct{}{}
		}
	}
	return out
}

func tokenSet(words []string, stopwords map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// jaccard computes |a∩b| / |a∪b|. Empty sets score zero.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func stringSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, s := range items {
		out[s] = struct{}{}
	}
	return out
}

func containsAny(content string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(content, k) {
			return true
		}
	}
	return false
}
