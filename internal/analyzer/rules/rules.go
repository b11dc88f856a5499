// Package rules holds the data tables driving the heuristic analysis pipeline:
// category keyword sets, regex pattern sources, curated entity tables, tag
// vocabularies, stopword sets and similarity thresholds. Keeping them as plain
// data (compiled lazily by the analyzer) lets the config layer override any of
// them without touching control flow.
package rules

// Entity is a curated proper noun with the surface forms it may appear as.
type Entity struct {
	Canonical string   `mapstructure:"canonical"`
	Patterns  []string `mapstructure:"patterns"`
}

// LabelGroup maps a tag label to the trigger keywords that activate it.
type LabelGroup struct {
	Label    string   `mapstructure:"label"`
	Triggers []string `mapstructure:"triggers"`
}

// Category describes one topic bucket: classification signals plus the tag
// vocabulary and title templates tied to it.
type Category struct {
	Name   string `mapstructure:"name"`
	Folder string `mapstructure:"folder"`

	// Classification signals.
	Keywords      []string `mapstructure:"keywords"`
	Patterns      []string `mapstructure:"patterns"`       // regex sources, PatternWeight each
	PatternWeight float64  `mapstructure:"pattern_weight"` // score per matching pattern

	// Tag generation (layer 1 and 2) and the simple fallback extractor.
	PriorityEntities []Entity     `mapstructure:"priority_entities"`
	BaseTags         []LabelGroup `mapstructure:"base_tags"`
	FallbackTerms    []string     `mapstructure:"fallback_terms"`
}

// RelationRules holds the similarity thresholds and token filters used by the
// relation finder.
type RelationRules struct {
	TitleScale float64 `mapstructure:"title_scale"` // weight applied to title Jaccard
	TitleGate  float64 `mapstructure:"title_gate"`  // raw Jaccard below this contributes nothing
	TagScale   float64 `mapstructure:"tag_scale"`
	TagGate    float64 `mapstructure:"tag_gate"`

	// Pair-type thresholds. Which constant applies depends on whether both
	// titles look like SNS-analysis notes, both look like tech notes, or
	// neither.
	SNSPairThreshold     float64 `mapstructure:"sns_pair_threshold"`
	TechPairThreshold    float64 `mapstructure:"tech_pair_threshold"`
	DefaultPairThreshold float64 `mapstructure:"default_pair_threshold"`

	SNSTitleKeywords  []string `mapstructure:"sns_title_keywords"`
	TechTitleKeywords []string `mapstructure:"tech_title_keywords"`

	TitleStopwords   []string `mapstructure:"title_stopwords"`
	ContentStopwords []string `mapstructure:"content_stopwords"`

	// Terms whose co-occurrence in both documents earns a direct bonus on the
	// content similarity signal (0.3 per shared term, capped at 0.8).
	ImportantKeywords []string `mapstructure:"important_keywords"`

	// Corpus pre-filter: program/documentation files are excluded before
	// scoring to avoid false "related" hits on non-memo files.
	DocFilePatterns []string `mapstructure:"doc_file_patterns"` // regex, matched against file name/path
	DocKeywords     []string `mapstructure:"doc_keywords"`      // >=DocKeywordLimit of these in the head excludes
	DocKeywordLimit int      `mapstructure:"doc_keyword_limit"`
	DocHeadBytes    int      `mapstructure:"doc_head_bytes"`

	MaxRelations int `mapstructure:"max_relations"`
}

// RuleSet is the full rule configuration consumed by the pipeline.
type RuleSet struct {
	// Categories in declaration order. Order matters twice: argmax ties go to
	// the first-declared category, and layer-1 tag extraction walks them in
	// order.
	Categories      []Category `mapstructure:"categories"`
	DefaultCategory string     `mapstructure:"default_category"`

	// Confidence = score / (wordCount * Normalizconst), clamped to [0,1].
	NormalizationConstant float64 `mapstructure:"normalization_constant"`

	// Voice-input artifacts: katakana transcriptions of romanized product
	// names, replaced before any other stage runs. Ordered so longer keys are
	// applied before their prefixes.
	VoiceSubstitutions []Substitution `mapstructure:"voice_substitutions"`

	// Special-case classification overrides, checked in this order:
	// person+meeting, business priority terms, tech priority terms, bare-AI
	// context disambiguation. Each fires with confidence 1.0.
	MeetingKeywords          []string `mapstructure:"meeting_keywords"`
	BusinessPriorityKeywords []string `mapstructure:"business_priority_keywords"`
	TechPriorityKeywords     []string `mapstructure:"tech_priority_keywords"`
	AIBusinessActions        []string `mapstructure:"ai_business_actions"`
	AITechActions            []string `mapstructure:"ai_tech_actions"`

	// Special-rule target categories, normally "business" and "tech".
	PersonMeetingCategory string `mapstructure:"person_meeting_category"`
	BusinessCategory      string `mapstructure:"business_category"`
	TechCategory          string `mapstructure:"tech_category"`

	// Person-name extraction.
	Honorifics         []string `mapstructure:"honorifics"`
	PersonNameExcludes []string `mapstructure:"person_name_excludes"`

	// Title generation.
	TitleMaxRunes    int      `mapstructure:"title_max_runes"`
	CommonKatakana   []string `mapstructure:"common_katakana"` // generic katakana words never treated as entities
	CommonWords      []string `mapstructure:"common_words"`
	ActionWords      []string `mapstructure:"action_words"`
	FillerLeads      []string `mapstructure:"filler_leads"` // sentence leads skipped by core extraction
	UniversalEnglish []string `mapstructure:"universal_english"`

	// Tag generation.
	MaxTags           int          `mapstructure:"max_tags"`
	UniversalEntities []Entity     `mapstructure:"universal_entities"` // cross-category tool/product names
	ActionTags        []LabelGroup `mapstructure:"action_tags"`
	EmotionTags       []LabelGroup `mapstructure:"emotion_tags"`
	ContentTypeTags   []LabelGroup `mapstructure:"content_type_tags"`

	Relations RelationRules `mapstructure:"relations"`

	// Summary generation filler appended when fewer than MinSummaryPoints
	// survive deduplication.
	MinSummaryPoints int      `mapstructure:"min_summary_points"`
	MaxSummaryPoints int      `mapstructure:"max_summary_points"`
	SummaryFillers   []string `mapstructure:"summary_fillers"`
	MaxKeyTerms      int      `mapstructure:"max_key_terms"`
}

// Substitution is an ordered find/replace pair.
type Substitution struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// CategoryNames returns the configured category names in declaration order.
func (r *RuleSet) CategoryNames() []string {
	names := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		names = append(names, c.Name)
	}
	return names
}

// Category looks up a category by name. The boolean is false for the default
// catch-all category, which carries no signal tables of its own.
func (r *RuleSet) Category(name string) (Category, bool) {
	for _, c := range r.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// FolderFor maps a category name to its vault folder.
func (r *RuleSet) FolderFor(category string) string {
	if c, ok := r.Category(category); ok && c.Folder != "" {
		return c.Folder
	}
	return "Others"
}
