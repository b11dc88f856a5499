// Package format normalizes raw memo text into presentable markdown:
// Japanese section markers become headings, bullet glyphs become list items,
// and heading-less notes get sections inferred from keywords.
package format

import (
	"regexp"
	"strings"
)

var (
	reBlankRun    = regexp.MustCompile(`\n\n\n+`)
	reHasHeading  = regexp.MustCompile(`(?m)^#+\s`)
	reBracketHead = regexp.MustCompile(`^【([^】]+)】(.*)$`)
	reNumberedLi  = regexp.MustCompile(`^(\d+)[\.、]\s*`)
	reEmojiLead   = regexp.MustCompile(`^[\x{1F300}-\x{1F9FF}]`)
	rePhaseLine   = regexp.MustCompile(`(?i)^(phase|フェーズ|ステップ|step)\s*\d+`)
)

var bulletGlyphs = []string{"・", "◆", "◇", "●", "○"}

// Level-3 heading keywords for ■-marked lines; everything else gets level 2.
var detailHeadingWords = []string{"詳細", "内容", "手法", "対象"}

// Format rewrites a memo body as markdown. The transformation is line-based
// and idempotent for already-markdown input.
func Format(content string) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	formatted := make([]string, 0, len(lines))
	for _, line := range lines {
		formatted = append(formatted, formatLine(line))
	}

	result := strings.Join(formatted, "\n")
	result = reBlankRun.ReplaceAllString(result, "\n\n")

	if !reHasHeading.MatchString(result) {
		result = addAutoHeadings(result)
	}
	return strings.TrimSpace(result)
}

func formatLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	if strings.HasPrefix(line, "■") {
		text := strings.TrimSpace(strings.TrimLeft(line, "■"))
		level := 2
		for _, w := range detailHeadingWords {
			if strings.Contains(text, w) {
				level = 3
				break
			}
		}
		return strings.Repeat("#", level) + " " + text
	}

	if m := reBracketHead.FindStringSubmatch(line); m != nil {
		heading, rest := m[1], strings.TrimSpace(m[2])
		if rest != "" {
			return "### " + heading + "\n" + rest
		}
		return "### " + heading
	}

	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			return "- " + strings.TrimSpace(strings.TrimPrefix(line, glyph))
		}
	}

	if m := reNumberedLi.FindStringSubmatch(line); m != nil {
		return m[1] + ". " + line[len(m[0]):]
	}

	if reEmojiLead.MatchString(line) && len([]rune(line)) <= 20 {
		return "## " + line
	}

	return line
}

// addAutoHeadings splits a heading-less note into keyword-driven sections.
func addAutoHeadings(content string) string {
	type section struct {
		title string
		lines []string
	}

	var sections []section
	current := section{}
	flush := func() {
		if len(current.lines) > 0 {
			sections = append(sections, current)
			current = section{}
		}
	}

	for _, line := range strings.Split(content, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "目的") || strings.Contains(lower, "概要") || strings.Contains(lower, "overview"):
			flush()
			sections = append(sections, section{title: "概要", lines: []string{line}})
		case strings.Contains(lower, "手法") || strings.Contains(lower, "方法") || strings.Contains(lower, "method"):
			flush()
			sections = append(sections, section{title: "方法", lines: []string{line}})
		case strings.Contains(lower, "結果") || strings.Contains(lower, "result"):
			flush()
			sections = append(sections, section{title: "結果", lines: []string{line}})
		case rePhaseLine.MatchString(lower):
			flush()
			sections = append(sections, section{title: "フェーズ", lines: []string{line}})
		default:
			current.lines = append(current.lines, line)
		}
	}
	if len(current.lines) > 0 {
		if len(sections) == 0 {
			current.title = "内容"
		}
		sections = append(sections, current)
	}

	var out []string
	for _, s := range sections {
		if s.title != "" && len(s.lines) > 0 {
			out = append(out, "## "+s.title)
		}
		out = append(out, s.lines...)
		if len(s.lines) > 0 {
			out = append(out, "")
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
