package analyzer

import (
	"regexp"
	"strings"
)

var (
	reTrailingParticle = regexp.MustCompile(`[はがをにでと]$`)
	reTrailingPhrase   = regexp.MustCompile(`(について|に関して|では)$`)
	reLeadingBracket   = regexp.MustCompile(`^[「『]`)
	reTrailingBracket  = regexp.MustCompile(`[」』]$`)
	reQuotePairJoin    = regexp.MustCompile(`」と「|』と『`)
	reBoundaryRune     = regexp.MustCompile(`[はがをにでと、。\s]`)
)

// cleanTitle normalizes a candidate title: trailing case particles and topic
// phrases are stripped, bracket pairs are removed or collapsed ("「A」と「B」"
// becomes "AとB"), and the result is truncated to maxRunes with an ellipsis
// placed at a particle or space boundary rather than mid-word.
func cleanTitle(text string, maxRunes int) string {
	t := strings.TrimSpace(text)
	t = reQuotePairJoin.ReplaceAllString(t, "と")
	t = reLeadingBracket.ReplaceAllString(t, "")
	t = reTrailingBracket.ReplaceAllString(t, "")
	t = reTrailingPhrase.ReplaceAllString(t, "")
	t = reTrailingParticle.ReplaceAllString(t, "")
	t = strings.TrimSpace(t)

	if maxRunes <= 0 {
		maxRunes = 30
	}
	runes := []rune(t)
	if len(runes) <= maxRunes {
		return t
	}

	cut := maxRunes - 3
	// Back up to the nearest particle or space so the ellipsis does not land
	// mid-word. Give up below two thirds of the budget.
	floor := cut * 2 / 3
	for i := cut; i > floor; i-- {
		if reBoundaryRune.MatchString(string(runes[i])) {
			cut = i
			break
		}
	}
	return strings.TrimSpace(string(runes[:cut])) + "…"
}
