package validator

import (
	"time"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
)

// Report is the outcome of one validation pass.
type Report struct {
	// Errors in emission order: per-item rules in order tree pre-order,
	// then the document-level groups.
	Errors []issue.ValidationError `json:"errors"`
	// TranslationErrors counts translation errors per additional language.
	TranslationErrors map[string]int `json:"translationErrors,omitempty"`
	// MarkdownAttention is set when item markdown contains raw HTML that the
	// renderer strips.
	MarkdownAttention bool `json:"markdownAttention,omitempty"`

	Stats *Stats `json:"stats,omitempty"`
}

// Stats describes a validation pass.
type Stats struct {
	Items     int           `json:"items"`
	Nodes     int           `json:"nodes"`
	Languages int           `json:"languages"`
	Duration  time.Duration `json:"duration"`
}

// HasErrors reports whether any error-level entry was emitted.
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error-level entries.
func (r *Report) ErrorCount() int {
	return issue.CountLevel(r.Errors, issue.LevelError)
}

// WarningCount returns the number of warning-level entries.
func (r *Report) WarningCount() int {
	return issue.CountLevel(r.Errors, issue.LevelWarning)
}

// ByLinkID returns the entries reported against one linkId, in emission order.
func (r *Report) ByLinkID(linkID string) []issue.ValidationError {
	return issue.ForLinkID(r.Errors, linkID)
}
