package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Screening question answer types.
const (
	AnswerShort      = "Short Answer"
	AnswerLong       = "Long Answer"
	AnswerDropdown   = "Dropdown"
	AnswerCheckboxes = "Checkboxes"
	AnswerRange      = "Range"
)

// AnswerTypeHasOptions reports whether an answer type carries an options list.
// Only dropdowns and checkboxes do.
func AnswerTypeHasOptions(answerType string) bool {
	return answerType == AnswerDropdown || answerType == AnswerCheckboxes
}

// ScreeningOption is a single choice on a dropdown or checkbox question.
type ScreeningOption struct {
	Label string `json:"label"`
}

// ScreeningQuestion is one pre-screening question answered by applicants.
type ScreeningQuestion struct {
	Question string            `json:"question"`
	Type     string            `json:"type"`
	Options  []ScreeningOption `json:"options,omitempty"`
}

// ScreeningQuestions persists as a single jsonb column.
type ScreeningQuestions []ScreeningQuestion

// Value implements driver.Valuer.
func (q ScreeningQuestions) Value() (driver.Value, error) {
	if q == nil {
		q = ScreeningQuestions{}
	}
	return json.Marshal(q)
}

// Scan implements sql.Scanner.
func (q *ScreeningQuestions) Scan(value interface{}) error {
	return scanJSON(value, q)
}

// InterviewQuestion is a single generated AI interview question.
type InterviewQuestion struct {
	Question string `json:"question"`
}

// QuestionCategory groups interview questions under a named category with an
// optional per-interview ask count.
type QuestionCategory struct {
	ID                 int                 `json:"id"`
	Category           string              `json:"category"`
	QuestionCountToAsk *int                `json:"questionCountToAsk"`
	Questions          []InterviewQuestion `json:"questions"`
}

// QuestionCategories persists as a single jsonb column.
type QuestionCategories []QuestionCategory

// Value implements driver.Valuer.
func (q QuestionCategories) Value() (driver.Value, error) {
	if q == nil {
		q = QuestionCategories{}
	}
	return json.Marshal(q)
}

// Scan implements sql.Scanner.
func (q *QuestionCategories) Scan(value interface{}) error {
	return scanJSON(value, q)
}

// HasQuestions reports whether at least one category holds a question.
func (q QuestionCategories) HasQuestions() bool {
	for _, cat := range q {
		if len(cat.Questions) > 0 {
			return true
		}
	}
	return false
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
