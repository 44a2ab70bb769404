package analysis

import (
	"github.com/artem13815/atsmatch/pkg/llm"
	"github.com/artem13815/atsmatch/pkg/resume"
)

// Input is what one analysis request carries.
type Input struct {
	Resume         resume.Extraction
	JobDescription string
}

// Report is the outcome of the three generation stages.
type Report struct {
	Resume         llm.Result
	JobDescription llm.Result
	Match          llm.Result
	// MatchPercentage is parsed from a successful match result, when present.
	MatchPercentage *int
	Warnings        []string
}

// Degraded reports whether any stage failed or the resume had no text.
func (r Report) Degraded() bool { return len(r.Warnings) > 0 }
