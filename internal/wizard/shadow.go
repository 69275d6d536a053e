package wizard

import (
	"github.com/jmagwili/launchpad-jia/internal/model"
)

// Section names a review-screen edit scope. Each section shadows a fixed
// subset of the draft's fields.
type Section int

const (
	SectionDetails Section = iota
	SectionScreening
	SectionInterview
)

// Shadow is an optimistic scoped copy of one section of the draft. Edits
// land on the copy; Commit writes them back and persists, Cancel throws them
// away. At most one shadow is open per wizard instance.
type Shadow struct {
	machine *Machine
	section Section
	copy    model.EditableCareerInfo
	closed  bool
}

// OpenShadow starts a scoped edit of the given section. Fails while another
// section's shadow is still open.
func (m *Machine) OpenShadow(section Section) (*Shadow, error) {
	if m.openShadow != nil {
		return nil, &ValidationError{Message: "Another section is already being edited"}
	}
	s := &Shadow{
		machine: m,
		section: section,
		copy:    cloneInfo(&m.draft.EditableCareerInfo),
	}
	m.openShadow = s
	return s, nil
}

// Edit mutates the shadow copy. The authoritative draft is untouched until
// Commit.
func (s *Shadow) Edit(mutate func(*model.EditableCareerInfo)) {
	if s.closed {
		return
	}
	mutate(&s.copy)
}

// Fields returns the shadow copy for form binding.
func (s *Shadow) Fields() *model.EditableCareerInfo {
	return &s.copy
}

// Commit writes the section's fields back onto the draft and, when the
// record is already persisted, submits the update. On failure the draft
// keeps the committed fields but the shadow stays open for retry.
func (s *Shadow) Commit() error {
	if s.closed {
		return nil
	}
	m := s.machine

	if err := m.checkSalaryRange(); err != nil {
		return err
	}

	applySection(s.section, &s.copy, &m.draft.EditableCareerInfo)

	if m.Saved() {
		if !m.inFlight.CompareAndSwap(false, true) {
			return nil
		}
		defer m.inFlight.Store(false)

		if err := m.persist(m.draft.Status); err != nil {
			return err
		}
	}

	s.close()
	return nil
}

// Cancel discards the shadow copy. No pipeline call is made and the draft is
// left exactly as it was.
func (s *Shadow) Cancel() {
	if s.closed {
		return
	}
	s.close()
}

func (s *Shadow) close() {
	s.closed = true
	s.machine.openShadow = nil
}

// applySection copies only the named section's fields from src onto dst.
func applySection(section Section, src, dst *model.EditableCareerInfo) {
	switch section {
	case SectionDetails:
		dst.JobTitle = src.JobTitle
		dst.Description = src.Description
		dst.EmploymentType = src.EmploymentType
		dst.WorkSetup = src.WorkSetup
		dst.WorkSetupRemarks = src.WorkSetupRemarks
		dst.Country = src.Country
		dst.Province = src.Province
		dst.Location = src.Location
		dst.SalaryNegotiable = src.SalaryNegotiable
		dst.MinimumSalary = copyFloat(src.MinimumSalary)
		dst.MaximumSalary = copyFloat(src.MaximumSalary)
	case SectionScreening:
		dst.ScreeningSetting = src.ScreeningSetting
		dst.RequireVideo = src.RequireVideo
		dst.ScreeningQuestions = cloneScreeningQuestions(src.ScreeningQuestions)
	case SectionInterview:
		dst.InterviewScreening = src.InterviewScreening
		dst.Questions = cloneQuestionCategories(src.Questions)
	}
}

// cloneInfo deep-copies the editable fields so shadow edits never alias the
// draft's nested slices.
func cloneInfo(src *model.EditableCareerInfo) model.EditableCareerInfo {
	out := *src
	out.MinimumSalary = copyFloat(src.MinimumSalary)
	out.MaximumSalary = copyFloat(src.MaximumSalary)
	out.ScreeningQuestions = cloneScreeningQuestions(src.ScreeningQuestions)
	out.Questions = cloneQuestionCategories(src.Questions)
	return out
}

func cloneScreeningQuestions(src model.ScreeningQuestions) model.ScreeningQuestions {
	if src == nil {
		return nil
	}
	out := make(model.ScreeningQuestions, len(src))
	for i, q := range src {
		out[i] = q
		if q.Options != nil {
			out[i].Options = make([]model.ScreeningOption, len(q.Options))
			copy(out[i].Options, q.Options)
		}
	}
	return out
}

func cloneQuestionCategories(src model.QuestionCategories) model.QuestionCategories {
	if src == nil {
		return nil
	}
	out := make(model.QuestionCategories, len(src))
	for i, cat := range src {
		out[i] = cat
		if cat.QuestionCountToAsk != nil {
			n := *cat.QuestionCountToAsk
			out[i].QuestionCountToAsk = &n
		}
		if cat.Questions != nil {
			out[i].Questions = make([]model.InterviewQuestion, len(cat.Questions))
			copy(out[i].Questions, cat.Questions)
		}
	}
	return out
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
