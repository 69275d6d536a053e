// Package wizard implements the recruiter-facing authoring flow for careers:
// the step gates, the state machine driving draft and publish saves, scoped
// shadow edits for the review screen, and the HTTP submitter that talks to
// the career API.
package wizard

import (
	"strings"

	"github.com/jmagwili/launchpad-jia/internal/model"
)

// Step is one of the four wizard screens, entered in declaration order.
type Step int

const (
	StepDetails Step = iota
	StepScreening
	StepInterview
	StepReview
)

var stepNames = map[Step]string{
	StepDetails:   "Job Details",
	StepScreening: "CV Review Settings",
	StepInterview: "AI Interview Setup",
	StepReview:    "Review",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Next returns the following step, staying put at the last one.
func (s Step) Next() Step {
	if s >= StepReview {
		return StepReview
	}
	return s + 1
}

// StepComplete reports whether the draft satisfies the given step's
// completion rule. All checks are pure reads on the draft.
func StepComplete(draft *model.Career, step Step) bool {
	switch step {
	case StepDetails:
		return strings.TrimSpace(draft.JobTitle) != "" &&
			strings.TrimSpace(draft.Description) != "" &&
			strings.TrimSpace(draft.WorkSetup) != ""
	case StepScreening:
		// Screening always carries a default setting, so this is satisfied
		// for any draft the wizard itself constructed.
		return strings.TrimSpace(draft.ScreeningSetting) != ""
	case StepInterview:
		return draft.Questions.HasQuestions()
	case StepReview:
		return StepComplete(draft, StepDetails) && StepComplete(draft, StepInterview)
	default:
		return false
	}
}

// FullyValid gates "Save as Published" from any step: details and interview
// must both be complete. Screening adds nothing beyond its default.
func FullyValid(draft *model.Career) bool {
	return StepComplete(draft, StepDetails) && StepComplete(draft, StepInterview)
}

// CanAdvance gates "Save and Continue" on the current step. The screening
// step always passes since its setting defaults.
func CanAdvance(draft *model.Career, current Step) bool {
	if current == StepScreening {
		return true
	}
	return StepComplete(draft, current)
}

// ResumeStep derives where an interrupted draft should reopen: the first
// incomplete step, or review when everything is done.
func ResumeStep(draft *model.Career) Step {
	details := StepComplete(draft, StepDetails)
	screening := StepComplete(draft, StepScreening)
	interview := StepComplete(draft, StepInterview)

	switch {
	case details && screening && interview:
		return StepReview
	case details && screening:
		return StepInterview
	case details:
		return StepScreening
	default:
		return StepDetails
	}
}
