package wizard

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jmagwili/launchpad-jia/internal/controller/career"
	"github.com/jmagwili/launchpad-jia/internal/model"
)

// Submitter persists a draft. The HTTP client in this package implements it
// against the career API; tests substitute a fake.
type Submitter interface {
	Create(req career.CreateCareerRequest) (*model.Career, error)
	Update(id uuid.UUID, req career.UpdateCareerRequest) (*model.Career, error)
}

// ValidationError is a failure the wizard detects itself, before any network
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SuggestedQuestion is a pre-screening question the wizard offers for
// one-tap add. Added tracks whether it already sits in the draft.
type SuggestedQuestion struct {
	Category string
	Question string
	Added    bool
}

// Machine owns the wizard's authoring state: the single draft record every
// form field binds into, the current step, and the persisted identity adopted
// after the first successful save.
type Machine struct {
	draft     model.Career
	step      Step
	identity  uuid.UUID
	orgID     uuid.UUID
	author    model.UserSnapshot
	submitter Submitter
	finished  bool

	suggested []SuggestedQuestion

	// inFlight latches while a submission is outstanding. A second trigger
	// during that window is silently ignored, never queued.
	inFlight atomic.Bool

	openShadow *Shadow
}

// NewDraft starts the wizard on a fresh draft carrying the standard
// defaults.
func NewDraft(orgID uuid.UUID, author model.UserSnapshot, submitter Submitter) *Machine {
	province, city := defaultLocation()
	return &Machine{
		draft: model.Career{
			EditableCareerInfo: model.EditableCareerInfo{
				EmploymentType:     model.EmploymentFullTime,
				Country:            defaultCountry,
				Province:           province,
				Location:           city,
				SalaryNegotiable:   true,
				ScreeningSetting:   model.ScreeningGoodFitAndAbove,
				InterviewScreening: model.ScreeningGoodFitAndAbove,
				RequireVideo:       true,
				ScreeningQuestions: defaultScreeningQuestions(),
				Questions:          defaultQuestionCategories(),
			},
			Status: model.CareerStatusDraft,
		},
		step:      StepDetails,
		orgID:     orgID,
		author:    author,
		submitter: submitter,
		suggested: defaultSuggestedQuestions(),
	}
}

// Resume reopens the wizard on an existing record, landing on the first
// incomplete step.
func Resume(existing model.Career, author model.UserSnapshot, submitter Submitter) *Machine {
	m := &Machine{
		draft:     existing,
		step:      ResumeStep(&existing),
		identity:  existing.ID,
		orgID:     existing.OrgID,
		author:    author,
		submitter: submitter,
		suggested: defaultSuggestedQuestions(),
	}
	m.markAddedSuggestions()
	return m
}

// Draft returns a copy of the current draft for display.
func (m *Machine) Draft() model.Career {
	return m.draft
}

// Step returns the wizard's current step.
func (m *Machine) Step() Step {
	return m.step
}

// Saved reports whether the draft has a persisted identity.
func (m *Machine) Saved() bool {
	return m.identity != uuid.Nil
}

// Identity returns the persisted record's ID, or uuid.Nil while unsaved.
func (m *Machine) Identity() uuid.UUID {
	return m.identity
}

// Finished reports whether a terminal save succeeded and the wizard should
// hand off to the careers listing.
func (m *Machine) Finished() bool {
	return m.finished
}

// Suggested returns the one-tap pre-screening suggestions.
func (m *Machine) Suggested() []SuggestedQuestion {
	out := make([]SuggestedQuestion, len(m.suggested))
	copy(out, m.suggested)
	return out
}

// Edit applies a field mutation to the draft. Every form binding funnels
// through here so there is exactly one authoritative copy of the record.
func (m *Machine) Edit(mutate func(*model.EditableCareerInfo)) {
	mutate(&m.draft.EditableCareerInfo)
}

// AddScreeningQuestion appends a pre-screening question. Options are dropped
// unless the answer type carries them.
func (m *Machine) AddScreeningQuestion(q model.ScreeningQuestion) {
	if !model.AnswerTypeHasOptions(q.Type) {
		q.Options = nil
	}
	m.draft.ScreeningQuestions = append(m.draft.ScreeningQuestions, q)
	m.markAddedSuggestions()
}

// RemoveScreeningQuestion deletes the question at index i.
func (m *Machine) RemoveScreeningQuestion(i int) {
	qs := m.draft.ScreeningQuestions
	if i < 0 || i >= len(qs) {
		return
	}
	m.draft.ScreeningQuestions = append(qs[:i], qs[i+1:]...)
	m.markAddedSuggestions()
}

// AddOption appends a choice to the dropdown or checkbox question at index
// i. Other answer types are left alone.
func (m *Machine) AddOption(i int, label string) {
	qs := m.draft.ScreeningQuestions
	if i < 0 || i >= len(qs) || !model.AnswerTypeHasOptions(qs[i].Type) {
		return
	}
	qs[i].Options = append(qs[i].Options, model.ScreeningOption{Label: label})
}

// RemoveOption deletes choice j from question i.
func (m *Machine) RemoveOption(i, j int) {
	qs := m.draft.ScreeningQuestions
	if i < 0 || i >= len(qs) {
		return
	}
	opts := qs[i].Options
	if j < 0 || j >= len(opts) {
		return
	}
	qs[i].Options = append(opts[:j], opts[j+1:]...)
}

// AddSuggested copies suggestion i into the draft as a short-answer question
// and marks it added.
func (m *Machine) AddSuggested(i int) {
	if i < 0 || i >= len(m.suggested) || m.suggested[i].Added {
		return
	}
	m.draft.ScreeningQuestions = append(m.draft.ScreeningQuestions, model.ScreeningQuestion{
		Question: m.suggested[i].Question,
		Type:     model.AnswerShort,
	})
	m.suggested[i].Added = true
}

// SetStep moves directly to an earlier or current step. Backward navigation
// is unrestricted; forward jumps go through AdvanceStep.
func (m *Machine) SetStep(s Step) {
	if s <= m.step {
		m.step = s
	}
}

// AdvanceStep moves to the next step when the current one's gate passes.
// Reports whether the move happened.
func (m *Machine) AdvanceStep() bool {
	if !CanAdvance(&m.draft, m.step) {
		return false
	}
	m.step = m.step.Next()
	return true
}

// SaveDraftAndAdvance persists the draft with status inactive and moves to
// the next step. A fresh draft adopts the identity assigned by the store so
// the next save becomes an update rather than a second insert. While a
// submission is outstanding, further triggers do nothing.
func (m *Machine) SaveDraftAndAdvance() error {
	if !CanAdvance(&m.draft, m.step) {
		return &ValidationError{Message: "Please fill in all required fields"}
	}
	if err := m.checkSalaryRange(); err != nil {
		return err
	}

	if !m.inFlight.CompareAndSwap(false, true) {
		return nil
	}
	defer m.inFlight.Store(false)

	if err := m.persist(model.CareerStatusDraft); err != nil {
		return err
	}
	m.step = m.step.Next()
	return nil
}

// SaveAsUnpublished persists the draft with status inactive from any step,
// with no completeness gate, then finishes the wizard.
func (m *Machine) SaveAsUnpublished() error {
	return m.saveTerminal(model.CareerStatusDraft)
}

// SaveAsPublished persists the draft with status active. Available from any
// step but gated on full validity.
func (m *Machine) SaveAsPublished() error {
	if !FullyValid(&m.draft) {
		return &ValidationError{Message: "Please fill in all required fields"}
	}
	return m.saveTerminal(model.CareerStatusActive)
}

// UpdateExisting overwrites the persisted record with the draft's current
// fields, keeping its status, then finishes. Requires a saved identity.
func (m *Machine) UpdateExisting() error {
	if !m.Saved() {
		return &ValidationError{Message: "Career has not been saved yet"}
	}
	return m.saveTerminal(m.draft.Status)
}

func (m *Machine) saveTerminal(status string) error {
	if err := m.checkSalaryRange(); err != nil {
		return err
	}

	if !m.inFlight.CompareAndSwap(false, true) {
		return nil
	}
	defer m.inFlight.Store(false)

	if err := m.persist(status); err != nil {
		return err
	}
	m.finished = true
	return nil
}

// persist routes to create or update based on whether an identity exists,
// adopting the store-assigned one on first create. Caller holds the latch.
func (m *Machine) persist(status string) error {
	if m.Saved() {
		saved, err := m.submitter.Update(m.identity, career.UpdateCareerRequest{
			EditableCareerInfo: m.draft.EditableCareerInfo,
			Status:             status,
		})
		if err != nil {
			return err
		}
		m.draft = *saved
		return nil
	}

	saved, err := m.submitter.Create(career.CreateCareerRequest{
		EditableCareerInfo: m.draft.EditableCareerInfo,
		OrgID:              m.orgID.String(),
		Status:             status,
	})
	if err != nil {
		return err
	}
	m.identity = saved.ID
	m.draft = *saved
	return nil
}

// checkSalaryRange rejects an inverted salary range before any network call.
func (m *Machine) checkSalaryRange() error {
	min, max := m.draft.MinimumSalary, m.draft.MaximumSalary
	if min != nil && max != nil && *min > *max {
		return &ValidationError{Message: "Minimum salary cannot be greater than maximum salary"}
	}
	return nil
}

func (m *Machine) markAddedSuggestions() {
	for i := range m.suggested {
		m.suggested[i].Added = false
		for _, q := range m.draft.ScreeningQuestions {
			if q.Question == m.suggested[i].Question {
				m.suggested[i].Added = true
				break
			}
		}
	}
}
