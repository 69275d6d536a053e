package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultJobLimit applies when an organization's plan reference is missing or
// unresolved.
const DefaultJobLimit = 3

// OrganizationPlan is a subscription tier defining how many active careers an
// organization may hold.
type OrganizationPlan struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4();->" json:"id"`
	Name     string    `gorm:"type:text" json:"name"`
	JobLimit int       `json:"jobLimit"`
}

// Organization is the tenant that owns careers. This service only reads it;
// organizations and plans are managed elsewhere.
type Organization struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4();->" json:"id"`
	Name          string            `gorm:"type:text" json:"name"`
	PlanID        *uuid.UUID        `gorm:"type:uuid" json:"planId"`
	Plan          *OrganizationPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	ExtraJobSlots int               `json:"extraJobSlots"`
	CreatedAt     time.Time         `gorm:"type:timestamp;<-:create" json:"createdAt"`
}
