package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmagwili/launchpad-jia/internal/model"
)

func draftWith(mutate func(*model.EditableCareerInfo)) *model.Career {
	c := &model.Career{}
	if mutate != nil {
		mutate(&c.EditableCareerInfo)
	}
	return c
}

func fillDetails(info *model.EditableCareerInfo) {
	info.JobTitle = "Backend Engineer"
	info.Description = "<p>Build APIs</p>"
	info.WorkSetup = model.WorkSetupHybrid
}

func fillScreening(info *model.EditableCareerInfo) {
	info.ScreeningSetting = model.ScreeningGoodFitAndAbove
}

func fillInterview(info *model.EditableCareerInfo) {
	info.Questions = model.QuestionCategories{
		{ID: 1, Category: "Technical", Questions: []model.InterviewQuestion{
			{Question: "Describe a system you designed."},
		}},
	}
}

func TestStepComplete_details(t *testing.T) {
	assert.False(t, StepComplete(draftWith(nil), StepDetails))

	missingSetup := draftWith(func(info *model.EditableCareerInfo) {
		info.JobTitle = "Backend Engineer"
		info.Description = "<p>Build APIs</p>"
	})
	assert.False(t, StepComplete(missingSetup, StepDetails))

	whitespaceTitle := draftWith(func(info *model.EditableCareerInfo) {
		fillDetails(info)
		info.JobTitle = "   "
	})
	assert.False(t, StepComplete(whitespaceTitle, StepDetails))

	assert.True(t, StepComplete(draftWith(fillDetails), StepDetails))
}

func TestStepComplete_screening(t *testing.T) {
	assert.False(t, StepComplete(draftWith(nil), StepScreening))
	assert.True(t, StepComplete(draftWith(fillScreening), StepScreening))
}

func TestStepComplete_interview(t *testing.T) {
	assert.False(t, StepComplete(draftWith(nil), StepInterview))

	emptyCategories := draftWith(func(info *model.EditableCareerInfo) {
		info.Questions = model.QuestionCategories{
			{ID: 1, Category: "Technical", Questions: []model.InterviewQuestion{}},
		}
	})
	assert.False(t, StepComplete(emptyCategories, StepInterview))

	assert.True(t, StepComplete(draftWith(fillInterview), StepInterview))
}

func TestStepComplete_review(t *testing.T) {
	detailsOnly := draftWith(fillDetails)
	assert.False(t, StepComplete(detailsOnly, StepReview))

	both := draftWith(func(info *model.EditableCareerInfo) {
		fillDetails(info)
		fillInterview(info)
	})
	assert.True(t, StepComplete(both, StepReview))
}

func TestFullyValid_ignoresScreening(t *testing.T) {
	noScreening := draftWith(func(info *model.EditableCareerInfo) {
		fillDetails(info)
		fillInterview(info)
	})
	assert.True(t, FullyValid(noScreening))

	screeningOnly := draftWith(fillScreening)
	assert.False(t, FullyValid(screeningOnly))
}

func TestCanAdvance_screeningAlwaysPasses(t *testing.T) {
	empty := draftWith(nil)
	assert.False(t, CanAdvance(empty, StepDetails))
	assert.True(t, CanAdvance(empty, StepScreening))
	assert.False(t, CanAdvance(empty, StepInterview))
}

func TestResumeStep(t *testing.T) {
	assert.Equal(t, StepDetails, ResumeStep(draftWith(nil)))

	detailsOnly := draftWith(fillDetails)
	assert.Equal(t, StepScreening, ResumeStep(detailsOnly))

	detailsAndScreening := draftWith(func(info *model.EditableCareerInfo) {
		fillDetails(info)
		fillScreening(info)
	})
	assert.Equal(t, StepInterview, ResumeStep(detailsAndScreening))

	all := draftWith(func(info *model.EditableCareerInfo) {
		fillDetails(info)
		fillScreening(info)
		fillInterview(info)
	})
	assert.Equal(t, StepReview, ResumeStep(all))
}

func TestStepNext_stopsAtReview(t *testing.T) {
	assert.Equal(t, StepScreening, StepDetails.Next())
	assert.Equal(t, StepReview, StepReview.Next())
}
