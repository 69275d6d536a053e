package wizard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jmagwili/launchpad-jia/internal/model"
)

func savedMachine(fake *fakeSubmitter) *Machine {
	existing := model.Career{ID: uuid.New(), OrgID: uuid.New(), Status: model.CareerStatusDraft}
	fillDetails(&existing.EditableCareerInfo)
	fillScreening(&existing.EditableCareerInfo)
	fillInterview(&existing.EditableCareerInfo)
	return Resume(existing, model.UserSnapshot{Name: "Ana Reyes"}, fake)
}

func TestShadow_cancelLeavesDraftUntouched(t *testing.T) {
	fake := newFakeSubmitter()
	m := savedMachine(fake)
	original := m.Draft()

	s, err := m.OpenShadow(SectionDetails)
	assert.NoError(t, err)

	s.Edit(func(info *model.EditableCareerInfo) {
		info.JobTitle = "Completely Different Title"
		info.WorkSetup = model.WorkSetupOnsite
	})
	s.Cancel()

	draft := m.Draft()
	assert.Equal(t, original.JobTitle, draft.JobTitle)
	assert.Equal(t, original.WorkSetup, draft.WorkSetup)

	creates, updates := fake.counts()
	assert.Zero(t, creates)
	assert.Zero(t, updates)
}

func TestShadow_commitAppliesOnlyItsSection(t *testing.T) {
	fake := newFakeSubmitter()
	m := savedMachine(fake)
	originalScreening := m.Draft().ScreeningSetting

	s, err := m.OpenShadow(SectionDetails)
	assert.NoError(t, err)

	s.Edit(func(info *model.EditableCareerInfo) {
		info.JobTitle = "Staff Engineer"
		// Out-of-section edits must not leak into the draft.
		info.ScreeningSetting = model.ScreeningOnlyStrongFit
	})
	assert.NoError(t, s.Commit())

	draft := m.Draft()
	assert.Equal(t, "Staff Engineer", draft.JobTitle)
	assert.Equal(t, originalScreening, draft.ScreeningSetting)

	_, updates := fake.counts()
	assert.Equal(t, 1, updates)
	assert.Equal(t, m.Identity(), fake.lastUpdateID)
}

func TestShadow_editsDoNotAliasDraftSlices(t *testing.T) {
	m := savedMachine(newFakeSubmitter())
	originalCount := len(m.Draft().Questions[0].Questions)

	s, err := m.OpenShadow(SectionInterview)
	assert.NoError(t, err)

	s.Edit(func(info *model.EditableCareerInfo) {
		info.Questions[0].Questions = append(info.Questions[0].Questions,
			model.InterviewQuestion{Question: "Tell me about a production incident."})
	})
	s.Cancel()

	assert.Len(t, m.Draft().Questions[0].Questions, originalCount)
}

func TestShadow_unsavedDraftCommitsLocally(t *testing.T) {
	fake := newFakeSubmitter()
	m := newTestMachine(fake)
	completeDraft(m)

	s, err := m.OpenShadow(SectionScreening)
	assert.NoError(t, err)

	s.Edit(func(info *model.EditableCareerInfo) {
		info.ScreeningSetting = model.ScreeningNoAutoPromotion
	})
	assert.NoError(t, s.Commit())

	assert.Equal(t, model.ScreeningNoAutoPromotion, m.Draft().ScreeningSetting)

	creates, updates := fake.counts()
	assert.Zero(t, creates)
	assert.Zero(t, updates)
}

func TestShadow_mutuallyExclusive(t *testing.T) {
	m := savedMachine(newFakeSubmitter())

	first, err := m.OpenShadow(SectionDetails)
	assert.NoError(t, err)

	_, err = m.OpenShadow(SectionScreening)
	assert.Error(t, err)

	first.Cancel()
	second, err := m.OpenShadow(SectionScreening)
	assert.NoError(t, err)
	second.Cancel()
}
