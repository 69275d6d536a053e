// Package career implements the career submission pipeline and its HTTP
// handlers: shape validation, sanitization, organization/plan lookup, quota
// enforcement and create-or-update resolution, in that order. Any failed gate
// aborts the submission with no partial write.
package career

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmagwili/launchpad-jia/internal/model"
	"github.com/jmagwili/launchpad-jia/internal/quota"
	"github.com/jmagwili/launchpad-jia/internal/sanitize"
)

// Pipeline failures surfaced distinctly to handlers. Messages are shown to
// the recruiter as-is.
var (
	ErrMissingRequiredField = errors.New("Job title, description, questions, location and work setup are required")
	ErrInvalidOrgReference  = errors.New("Invalid organization ID")
	ErrOrganizationNotFound = errors.New("Organization not found")
	ErrQuotaExceeded        = errors.New("You have reached the maximum number of jobs for your plan")
	ErrCareerNotFound       = errors.New("Career not found")
)

// CreateCareerRequest is the create payload. Wire names match the dashboard
// client.
type CreateCareerRequest struct {
	model.EditableCareerInfo
	OrgID  string `json:"orgID"`
	Status string `json:"status"`
}

// UpdateCareerRequest carries the mutable fields of an existing career plus
// the status to move it to.
type UpdateCareerRequest struct {
	model.EditableCareerInfo
	Status string `json:"status"`
}

// submitCreate runs every pipeline gate and inserts a new career. The
// returned record carries the store-assigned identity the caller must adopt
// for subsequent saves.
func (cc *CareerController) submitCreate(req *CreateCareerRequest, author model.UserSnapshot) (*model.Career, error) {
	if err := validateShape(&req.EditableCareerInfo); err != nil {
		return nil, err
	}

	orgID, err := uuid.Parse(req.OrgID)
	if err != nil {
		return nil, ErrInvalidOrgReference
	}

	sanitize.Career(&req.EditableCareerInfo)

	var org model.Organization
	if err := cc.DB.Preload("Plan").First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve organization: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.CareerStatusActive
	}

	// Only publishes consume a slot. The count itself only ever considers
	// active careers; drafts never count toward the ceiling.
	if status == model.CareerStatusActive {
		var activeCount int64
		if err := cc.DB.Model(&model.Career{}).
			Where("org_id = ? AND status = ?", org.ID, model.CareerStatusActive).
			Count(&activeCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count active careers: %w", err)
		}

		ceiling := quota.Ceiling(org.Plan, org.ExtraJobSlots)
		if !quota.HasCapacity(ceiling, int(activeCount)) {
			return nil, ErrQuotaExceeded
		}
	}

	now := time.Now()
	career := model.Career{
		OrgID:              org.ID,
		EditableCareerInfo: req.EditableCareerInfo,
		Status:             status,
		CreatedBy:          author,
		LastEditedBy:       author,
		LastActivityAt:     now,
	}

	if err := cc.DB.Create(&career).Error; err != nil {
		return nil, fmt.Errorf("failed to create career: %w", err)
	}

	return &career, nil
}

// submitUpdate overwrites the mutable fields of an existing career.
// CreatedAt and CreatedBy are column-protected and survive; UpdatedAt,
// LastEditedBy and LastActivityAt are refreshed on every save.
func (cc *CareerController) submitUpdate(id uuid.UUID, req *UpdateCareerRequest, editor model.UserSnapshot) (*model.Career, error) {
	if err := validateShape(&req.EditableCareerInfo); err != nil {
		return nil, err
	}

	sanitize.Career(&req.EditableCareerInfo)

	var career model.Career
	if err := cc.DB.First(&career, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve career: %w", err)
	}

	career.EditableCareerInfo = req.EditableCareerInfo
	if req.Status != "" {
		career.Status = req.Status
	}
	career.LastEditedBy = editor
	career.LastActivityAt = time.Now()

	if err := cc.DB.Save(&career).Error; err != nil {
		return nil, fmt.Errorf("failed to update career: %w", err)
	}

	return &career, nil
}

// validateShape enforces required-field presence before anything touches the
// store.
func validateShape(info *model.EditableCareerInfo) error {
	if info.JobTitle == "" || info.Description == "" || info.Location == "" || info.WorkSetup == "" || len(info.Questions) == 0 {
		return ErrMissingRequiredField
	}
	return nil
}
