// Package oracle provides deep-analysis providers that can replace the
// heuristic classification when configured. Providers implement
// analyzer.Oracle and are selected by configuration; a nil oracle means the
// heuristics run alone.
package oracle

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"memofiler/internal/analyzer"
)

// verdict is the JSON shape both providers ask the model to return.
type verdict struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Summary  []string `json:"summary,omitempty"`
}

var reJSONBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// parseVerdict extracts the JSON verdict from a model response, tolerating
// markdown code fences around it.
func parseVerdict(content string, categories []string) (*analyzer.OracleResult, error) {
	content = strings.TrimSpace(content)
	if m := reJSONBlock.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}

	var v verdict
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	if v.Title == "" || v.Category == "" {
		return nil, fmt.Errorf("analysis response missing title or category")
	}
	if !validCategory(v.Category, categories) {
		return nil, fmt.Errorf("analysis response used unknown category %q", v.Category)
	}
	return &analyzer.OracleResult{
		Category: v.Category,
		Title:    v.Title,
		Tags:     v.Tags,
		Summary:  v.Summary,
	}, nil
}

func validCategory(name string, categories []string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}

// buildPrompt renders the shared analysis prompt. The instructions mirror the
// heuristic pipeline's priorities: concrete noun-phrase titles, business
// content wins over incidental AI/education mentions.
func buildPrompt(content string, categories []string) string {
	list := strings.Join(categories, ", ")
	return fmt.Sprintf(`あなたは文章解析の専門家です。以下のメモ内容の主題を正確に特定し、タイトル、カテゴリ、タグをJSON形式で提案してください。

# タイトル生成のルール
- 文章の中心的主題を正確に反映すること
- メモに含まれていない単語や概念をタイトルに使わないこと
- 抽象的で曖昧なタイトル（「AI活用法」等）を避けること
- 体言止めで10-20文字程度にすること

# カテゴリ分類の優先ルール
- 個人名や打ち合わせ・会議・ビジネス戦略・経営・マーケティング → business（最優先）
- プログラミング、システム、技術的内容 → tech
- 教育手法、学習方法、指導内容（ビジネス要素なし） → education
- SNS・発信・コンテンツ制作（ビジネス要素なし） → media
- 「AI」「教育」などの単語だけで判断せず、文脈を重視すること

# 利用可能なカテゴリ
%s

# メモ内容
---
%s
---

# 出力形式 (JSON)
{
  "title": "（体言止めのタイトル）",
  "category": "（カテゴリリストから選択）",
  "tags": ["（タグ1）", "（タグ2）"],
  "summary": ["（要点1）", "（要点2）", "（要点3）"]
}`, list, content)
}
