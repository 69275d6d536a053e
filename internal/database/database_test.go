package database

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	m "github.com/jmagwili/launchpad-jia/internal/model"
)

var testDB *DBinstanceStruct

func TestMain(mt *testing.M) {
	var err error
	teardownFn, db, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	testDB = db

	mt.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardownFn != nil {
		_ = teardownFn(ctx)
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	assert.Equal(t, "up", stats["status"])
	assert.NotContains(t, stats, "error")
}

func TestSeededFixtures(t *testing.T) {
	assert.Equal(t, 3, TestPlanStarter.JobLimit)
	assert.Equal(t, 10, TestPlanGrowth.JobLimit)
	assert.Nil(t, TestOrgNoPlan.PlanID)
	assert.NotEqual(t, TestCareerDraft.ID, TestCareerActive.ID)

	// TestOrgQuota must sit exactly at its plan ceiling.
	var activeCount int64
	err := testDB.Model(&m.Career{}).
		Where("org_id = ? AND status = ?", TestOrgQuota.ID, m.CareerStatusActive).
		Count(&activeCount).Error
	assert.NoError(t, err)
	assert.EqualValues(t, TestPlanStarter.JobLimit, activeCount)
}

func TestCareerRoundTrip(t *testing.T) {
	count := 2
	career := m.Career{
		OrgID: TestOrgMain.ID,
		EditableCareerInfo: m.EditableCareerInfo{
			JobTitle:    "QA Engineer",
			Description: "<p>Test things.</p>",
			WorkSetup:   m.WorkSetupRemote,
			Location:    "Manila",
			ScreeningQuestions: m.ScreeningQuestions{
				{Question: "Notice period?", Type: m.AnswerShort},
				{Question: "Setup?", Type: m.AnswerDropdown, Options: []m.ScreeningOption{{Label: "Remote"}, {Label: "Onsite"}}},
			},
			Questions: m.QuestionCategories{
				{ID: 1, Category: "Technical", QuestionCountToAsk: &count, Questions: []m.InterviewQuestion{{Question: "How do you triage flaky tests?"}}},
			},
		},
		Status:       m.CareerStatusDraft,
		CreatedBy:    TestRecruiter1.Snapshot(),
		LastEditedBy: TestRecruiter1.Snapshot(),
	}

	assert.NoError(t, testDB.Create(&career).Error)
	assert.NotEqual(t, career.ID.String(), "00000000-0000-0000-0000-000000000000")

	var got m.Career
	assert.NoError(t, testDB.First(&got, "id = ?", career.ID).Error)
	assert.Equal(t, "QA Engineer", got.JobTitle)
	assert.Len(t, got.ScreeningQuestions, 2)
	assert.Len(t, got.ScreeningQuestions[1].Options, 2)
	assert.NotNil(t, got.Questions[0].QuestionCountToAsk)
	assert.Equal(t, 2, *got.Questions[0].QuestionCountToAsk)
	assert.Equal(t, TestRecruiter1.Email, got.CreatedBy.Email)
}
