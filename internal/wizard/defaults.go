package wizard

import (
	"github.com/jmagwili/launchpad-jia/internal/geo"
	"github.com/jmagwili/launchpad-jia/internal/model"
)

const defaultCountry = geo.DefaultCountry

func defaultLocation() (province, city string) {
	p, c := geo.DefaultLocation()
	return p.Name, c.Name
}

// defaultScreeningQuestions seeds every fresh draft with one educational
// attainment question.
func defaultScreeningQuestions() model.ScreeningQuestions {
	return model.ScreeningQuestions{
		{
			Question: "What is your highest educational attainment?",
			Type:     model.AnswerDropdown,
			Options: []model.ScreeningOption{
				{Label: "High School"},
				{Label: "College"},
				{Label: "Postgraduate"},
			},
		},
	}
}

// defaultQuestionCategories seeds the five interview categories, each empty
// until the question generator fills them in.
func defaultQuestionCategories() model.QuestionCategories {
	names := []string{
		"CV Validation / Experience",
		"Technical",
		"Behavioral",
		"Analytical",
		"Others",
	}
	out := make(model.QuestionCategories, 0, len(names))
	for i, name := range names {
		out = append(out, model.QuestionCategory{
			ID:        i + 1,
			Category:  name,
			Questions: []model.InterviewQuestion{},
		})
	}
	return out
}

func defaultSuggestedQuestions() []SuggestedQuestion {
	return []SuggestedQuestion{
		{Category: "Notice Period", Question: "How long is your notice period?"},
		{Category: "Work Setup", Question: "How often are you willing to report to the office each week?"},
		{Category: "Asking Salary", Question: "How much is your expected monthly salary?"},
	}
}
