// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

// Career status values. A draft stays "inactive" until the recruiter
// publishes it; applicants only ever see "active" careers.
const (
	CareerStatusActive = "active"
	CareerStatusDraft  = "inactive"
)

// Work setup options offered by the wizard.
const (
	WorkSetupRemote = "Fully Remote"
	WorkSetupOnsite = "Onsite"
	WorkSetupHybrid = "Hybrid"
)

// Employment types.
const (
	EmploymentFullTime = "Full-Time"
	EmploymentPartTime = "Part-Time"
)

// Screening settings: the automatic-promotion threshold applied to CV and
// interview evaluation.
const (
	ScreeningGoodFitAndAbove = "Good Fit and above"
	ScreeningOnlyStrongFit   = "Only Strong Fit"
	ScreeningNoAutoPromotion = "No Automatic Promotion"
)

// EditableCareerInfo is the part of a career the wizard can edit
type EditableCareerInfo struct {
	JobTitle         string `gorm:"type:text" json:"jobTitle"`
	Description      string `gorm:"type:text" json:"description"`
	EmploymentType   string `gorm:"type:text" json:"employmentType"`
	WorkSetup        string `gorm:"type:text" json:"workSetup"`
	WorkSetupRemarks string `gorm:"type:text" json:"workSetupRemarks"`

	Country  string `gorm:"type:text" json:"country"`
	Province string `gorm:"type:text" json:"province"`
	// Location carries the city name; it keeps its legacy wire name.
	Location string `gorm:"type:text" json:"location"`

	SalaryNegotiable bool     `json:"salaryNegotiable"`
	MinimumSalary    *float64 `json:"minimumSalary"`
	MaximumSalary    *float64 `json:"maximumSalary"`

	ScreeningSetting   string             `gorm:"type:text" json:"screeningSetting"`
	InterviewScreening string             `gorm:"type:text" json:"interviewScreening"`
	RequireVideo       bool               `json:"requireVideo"`
	ScreeningQuestions ScreeningQuestions `gorm:"type:jsonb" json:"screeningQuestions"`
	Questions          QuestionCategories `gorm:"type:jsonb" json:"questions"`
}

// Career is gorm model for store career (job posting) data in DB
type Career struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4();->" json:"id"`
	OrgID        uuid.UUID    `gorm:"type:uuid;not null;index;<-:create" json:"orgID"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"-"`

	EditableCareerInfo

	Status string `gorm:"type:text;default:'inactive';index" json:"status"`

	CreatedBy    UserSnapshot `gorm:"embedded;embeddedPrefix:created_by_;<-:create" json:"createdBy"`
	LastEditedBy UserSnapshot `gorm:"embedded;embeddedPrefix:last_edited_by_" json:"lastEditedBy"`

	CreatedAt      time.Time `gorm:"type:timestamp;<-:create" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"type:timestamp" json:"updatedAt"`
	LastActivityAt time.Time `gorm:"type:timestamp" json:"lastActivityAt"`
}

// IsDraft reports whether the career is still unpublished.
func (c *Career) IsDraft() bool {
	return c.Status != CareerStatusActive
}
