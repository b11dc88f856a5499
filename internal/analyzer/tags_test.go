package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

func TestTagGenerator_PriorityOrdering(t *testing.T) {
	g := NewTagGenerator(rules.Default())

	content := "ClaudeとGitHubでコードを書く学習をした"
	result := g.Generate(content, models.CategoryResult{Name: "tech"})

	require.NotEmpty(t, result.Tags)
	assert.Equal(t, "6-layer", result.Method)

	// Curated entities come first, then category vocabulary, then the rest.
	assert.Equal(t, "#Claude", result.Tags[0])
	assert.Equal(t, "#GitHub", result.Tags[1])

	idxOf := func(tag string) int {
		for i, tg := range result.Tags {
			if tg == tag {
				return i
			}
		}
		return -1
	}
	require.GreaterOrEqual(t, idxOf("#プログラミング"), 0, "category base tag triggered by コード should be present")
	require.GreaterOrEqual(t, idxOf("#学習"), 0, "action tag should be present")
	assert.Less(t, idxOf("#プログラミング"), idxOf("#学習"), "category bucket precedes plain bucket")
}

func TestTagGenerator_DeduplicatesAndCaps(t *testing.T) {
	g := NewTagGenerator(rules.Default())

	// Claude appears via the curated table, the universal table and the
	// capitalized-English regex; it must be emitted once.
	result := g.Generate("Claude Claude Claude", models.CategoryResult{Name: "tech"})

	count := 0
	for _, tag := range result.Tags {
		if tag == "#Claude" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.LessOrEqual(t, len(result.Tags), 12)
}

func TestTagGenerator_FrequentTermsExcludeHiraganaRuns(t *testing.T) {
	g := NewTagGenerator(rules.Default())

	result := g.Generate("それでも それでも 読解指導 読解指導", models.CategoryResult{Name: "general"})

	assert.NotContains(t, result.Tags, "#それでも", "all-hiragana runs are noise")
	assert.Contains(t, result.Tags, "#読解指導")
}

func TestTagGenerator_FallbackWhenLayersEmpty(t *testing.T) {
	g := NewTagGenerator(rules.Default())

	result := g.Generate("xyz", models.CategoryResult{Name: "general"})

	assert.Equal(t, "fallback", result.Method)
	assert.Equal(t, []string{"#メモ"}, result.Tags)
}

func TestTagGenerator_FallbackCuratedTerms(t *testing.T) {
	rs := rules.Default()
	// Strip every layer input for the education category so the simple
	// extractor is the only source left.
	for i := range rs.Categories {
		rs.Categories[i].PriorityEntities = nil
		rs.Categories[i].BaseTags = nil
	}
	rs.UniversalEntities = nil
	rs.ActionTags = nil
	rs.EmotionTags = nil
	rs.ContentTypeTags = nil
	g := NewTagGenerator(rs)

	result := g.Generate("開成", models.CategoryResult{Name: "education"})

	assert.Equal(t, "fallback", result.Method)
	assert.Equal(t, []string{"#開成"}, result.Tags)
}
