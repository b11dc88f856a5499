package models

import (
	"time"
)

// CategoryResult is the outcome of the category classification stage.
type CategoryResult struct {
	Name        string             `json:"name"`
	Confidence  float64            `json:"confidence"`
	Scores      map[string]float64 `json:"scores,omitempty"`
	SpecialRule string             `json:"special_rule,omitempty"` // which override fired, if any
}

// TitleCandidate is one title produced by a single strategy.
type TitleCandidate struct {
	Title  string  `json:"title"`
	Method string  `json:"method"`
	Score  float64 `json:"score"`
}

// TitleResult is the outcome of the title generation stage.
type TitleResult struct {
	Title        string           `json:"title"`
	Method       string           `json:"method"`
	Alternatives []TitleCandidate `json:"alternatives,omitempty"`
	Confidence   float64          `json:"confidence"`
}

// TagResult is the outcome of the tag generation stage. Tags carry their "#"
// prefix and are ordered priority-first, deduplicated, capped at the configured
// maximum.
type TagResult struct {
	Tags   []string `json:"tags"`
	Method string   `json:"method"`
}

// Document is one corpus entry fed to the relation finder: an existing note
// identified by path with its display name (filename without extension) and
// full text.
type Document struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Body string `json:"body"`
}

// RelationType labels why two documents are considered related.
type RelationType string

const (
	RelationEducational RelationType = "educational"
	RelationTechnical   RelationType = "technical"
	RelationBusiness    RelationType = "business"
	RelationGeneral     RelationType = "general"
)

// RelatedFile is one corpus document judged similar enough to cross-reference.
type RelatedFile struct {
	Path         string       `json:"path"`
	DisplayName  string       `json:"display_name"`
	Score        float64      `json:"score"`
	StarRating   int          `json:"star_rating"` // 1..5
	RelationType RelationType `json:"relation_type"`
	Preview      string       `json:"preview,omitempty"`
}

// Stars renders the star rating for display ("★★★").
func (r RelatedFile) Stars() string {
	n := r.StarRating
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = '★'
	}
	return string(out)
}

// RelationResult is the outcome of the relation finding stage. PassedCount is
// the number of candidates above threshold (not just the returned top slice);
// ScannedCount is the corpus size that was actually scored.
type RelationResult struct {
	Relations    []RelatedFile `json:"relations"`
	PassedCount  int           `json:"passed_count"`
	ScannedCount int           `json:"scanned_count"`
	Error        string        `json:"error,omitempty"`
}

// Summary holds bullet-point highlights plus key terms.
type Summary struct {
	Points   []string `json:"points"`
	KeyTerms []string `json:"key_terms,omitempty"`
}

// AnalysisResult aggregates one full pipeline run. This is the unit returned
// to callers and the unit the vault writer persists.
type AnalysisResult struct {
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	Category  CategoryResult `json:"category"`
	Title     TitleResult    `json:"title"`
	Tags      TagResult      `json:"tags"`
	Relations RelationResult `json:"relations"`
	Summary   Summary        `json:"summary"`
	Oracle    bool           `json:"oracle"` // true when the deep analyzer supplied category/title/tags
	Timestamp time.Time      `json:"timestamp"`
}

// AnalysisOverride carries user-edited fields that replace the corresponding
// pipeline output. Passed explicitly by the caller; the pipeline holds no
// session state between calls.
type AnalysisOverride struct {
	Title    string   `json:"title,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Empty reports whether the override carries nothing.
func (o *AnalysisOverride) Empty() bool {
	return o == nil || (o.Title == "" && o.Category == "" && len(o.Tags) == 0)
}

// AnalysisRecord mirrors the analysis_history table.
type AnalysisRecord struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Category      string    `db:"category" json:"category"`
	Confidence    float64   `db:"confidence" json:"confidence"`
	TagCount      int       `db:"tag_count" json:"tag_count"`
	RelationCount int       `db:"relation_count" json:"relation_count"`
	Saved         bool      `db:"saved" json:"saved"`
	FilePath      string    `db:"file_path" json:"file_path,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
