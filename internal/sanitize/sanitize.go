// Package sanitize strips untrusted markup from career content before it is
// persisted. Plain fields lose all tags; descriptions keep a small allow-list
// of inline and structural tags.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/jmagwili/launchpad-jia/internal/model"
)

var (
	plainPolicy = bluemonday.StrictPolicy()
	richPolicy  = newRichPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "p", "ul", "ol", "li", "br", "a")
	p.AllowAttrs("href", "target").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	return p
}

// Plain removes every tag and attribute from s.
func Plain(s string) string {
	return plainPolicy.Sanitize(s)
}

// Rich keeps b, i, em, strong, p, ul, ol, li, br and anchors carrying only
// href/target with http, https or mailto targets. Everything else is removed.
func Rich(s string) string {
	return richPolicy.Sanitize(s)
}

// Career cleans every free-text field of info in place, including nested
// screening questions and interview question categories. Sanitizing
// already-clean content is a no-op, so the pipeline may call this on every
// submission without drift.
func Career(info *model.EditableCareerInfo) {
	info.JobTitle = Plain(info.JobTitle)
	info.Description = Rich(info.Description)
	info.WorkSetup = Plain(info.WorkSetup)
	info.WorkSetupRemarks = Plain(info.WorkSetupRemarks)
	info.Country = Plain(info.Country)
	info.Province = Plain(info.Province)
	info.Location = Plain(info.Location)

	for i := range info.Questions {
		cat := &info.Questions[i]
		cat.Category = Plain(cat.Category)
		for j := range cat.Questions {
			cat.Questions[j].Question = Plain(cat.Questions[j].Question)
		}
	}

	for i := range info.ScreeningQuestions {
		sq := &info.ScreeningQuestions[i]
		sq.Question = Plain(sq.Question)
		if !model.AnswerTypeHasOptions(sq.Type) {
			// Options only make sense on dropdowns and checkboxes.
			sq.Options = nil
			continue
		}
		for j := range sq.Options {
			sq.Options[j].Label = Plain(sq.Options[j].Label)
		}
	}
}
