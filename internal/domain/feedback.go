package domain

// ActivityOption is one selectable engagement level for an activity.
// Levels form a closed set, canonically 1 through 4.
type ActivityOption struct {
	Level int    `json:"level" yaml:"level"`
	Label string `json:"label" yaml:"label"`
}

// ActivityDefinition is one scored sub-task within a class session.
// Loaded once per (month, lesson) catalog and immutable afterwards.
type ActivityDefinition struct {
	ID          int              `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	Options     []ActivityOption `json:"options" yaml:"options"`
}

// RawItem is one untrusted per-activity selection as submitted.
// Both ID and Value arrive as strings; the normalizer owns parsing.
type RawItem struct {
	ID    string
	Value string
}

// ObservationInput is the untrusted request payload after shape-level
// decoding (see parse.go for the accepted wire forms).
type ObservationInput struct {
	ChildName string
	AgeMonths int // 0 means not provided
	Items     []RawItem
	Prefs     map[string]string
}

// NormalizedItem is a validated selection resolved against the catalog.
type NormalizedItem struct {
	ID               int
	Level            int
	Title            string
	Description      string
	ObservationLabel string
}

// StyleRules are derived tone/focus knobs for generated phrasing.
// They influence wording, never factual content.
type StyleRules struct {
	Tone   string
	Length string
	Focus  string
	Avoid  []string
}

// DomainTags are the five developmental domains a summary may be split by.
var DomainTags = []string{"대근육", "소근육", "인지", "언어", "사회성"}

// GeneratedContent is the merged result of one generation attempt.
// PerItem holds exactly-three-line paragraphs keyed by activity id.
type GeneratedContent struct {
	PerItem         map[int]string
	Summary         string
	SummaryByDomain map[string]string
}
