package domain

// ChecklistResult is the outcome of checking one document against a checklist.
type ChecklistResult struct {
	File            string   `json:"file"`
	Checklist       string   `json:"checklist"`
	FoundSections   []string `json:"found_sections"`
	MissingSections []string `json:"missing_sections"`
	FoundKeywords   []string `json:"found_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Score           float64  `json:"score"`
	MinScore        int      `json:"min_score"`
	Passed          bool     `json:"passed"`
}
