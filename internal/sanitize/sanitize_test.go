package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmagwili/launchpad-jia/internal/model"
)

func TestPlain_stripsScript(t *testing.T) {
	got := Plain("<script>alert(1)</script>Senior Engineer")

	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "script")
	assert.Contains(t, got, "Senior Engineer")
}

func TestRich_keepsAllowedTags(t *testing.T) {
	got := Rich("<p>ok</p><script>bad()</script>")

	assert.Contains(t, got, "<p>ok</p>")
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "bad()")
}

func TestRich_anchorSchemes(t *testing.T) {
	assert.Contains(t, Rich(`<a href="https://example.com">site</a>`), `href="https://example.com"`)
	assert.Contains(t, Rich(`<a href="mailto:hr@example.com">mail</a>`), "mailto:hr@example.com")
	assert.NotContains(t, Rich(`<a href="javascript:alert(1)">x</a>`), "javascript")
}

func TestRich_idempotent(t *testing.T) {
	dirty := `<p>We build <strong>things</strong></p><img src="x" onerror="pwn()">`

	once := Rich(dirty)
	twice := Rich(once)

	assert.Equal(t, once, twice)
}

func TestCareer_deepClean(t *testing.T) {
	count := 3
	info := model.EditableCareerInfo{
		JobTitle:    "<b>Backend</b> Engineer",
		Description: "<p>Go services</p><iframe src='x'></iframe>",
		WorkSetup:   model.WorkSetupHybrid,
		Location:    "<i>Makati</i>",
		Questions: model.QuestionCategories{
			{
				ID:                 1,
				Category:           "<u>Technical</u>",
				QuestionCountToAsk: &count,
				Questions: []model.InterviewQuestion{
					{Question: "Explain <script>x</script>goroutines"},
				},
			},
		},
		ScreeningQuestions: model.ScreeningQuestions{
			{
				Question: "Highest <em>attainment</em>?",
				Type:     model.AnswerDropdown,
				Options:  []model.ScreeningOption{{Label: "<p>College</p>"}},
			},
			{
				Question: "Notice period?",
				Type:     model.AnswerShort,
				Options:  []model.ScreeningOption{{Label: "should vanish"}},
			},
		},
	}

	Career(&info)

	assert.Equal(t, "Backend Engineer", info.JobTitle)
	assert.Contains(t, info.Description, "<p>Go services</p>")
	assert.NotContains(t, info.Description, "iframe")
	assert.Equal(t, "Makati", info.Location)
	assert.Equal(t, "Technical", info.Questions[0].Category)
	assert.NotContains(t, info.Questions[0].Questions[0].Question, "<")
	assert.Equal(t, "College", info.ScreeningQuestions[0].Options[0].Label)

	// Non-choice answer types carry no options.
	assert.Nil(t, info.ScreeningQuestions[1].Options)
}

func TestCareer_idempotent(t *testing.T) {
	info := model.EditableCareerInfo{
		JobTitle:    "Data Analyst",
		Description: "<p>Dashboards <strong>daily</strong></p>",
		Location:    "Cebu City",
	}

	Career(&info)
	first := info
	Career(&info)

	assert.Equal(t, first, info)
}
