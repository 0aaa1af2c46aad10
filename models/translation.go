package models

// TranslationBundle is an opaque tree of label strings for one language,
// keyed by the primary language subtag.
type TranslationBundle struct {
	Lang   string         `json:"lang"`
	Labels map[string]any `json:"labels"`
}
