package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSnapshot is the author slice stamped onto careers as createdBy and
// lastEditedBy. It is denormalized on purpose: the posting keeps the name the
// record was authored under even if the account changes later.
type UserSnapshot struct {
	Image string `gorm:"type:text" json:"image"`
	Name  string `gorm:"type:text" json:"name"`
	Email string `gorm:"type:text" json:"email"`
}

// User is gorm model for recruiter accounts resolved from bearer tokens.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4();->" json:"id"`
	Email     string     `gorm:"type:text;uniqueIndex" json:"email"`
	Name      string     `gorm:"type:text" json:"name"`
	Image     string     `gorm:"type:text" json:"image"`
	OrgID     *uuid.UUID `gorm:"type:uuid;index" json:"orgID"`
	CreatedAt time.Time  `gorm:"type:timestamp;<-:create" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"type:timestamp" json:"updatedAt"`
}

// Snapshot returns the author slice recorded on careers.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{Image: u.Image, Name: u.Name, Email: u.Email}
}
