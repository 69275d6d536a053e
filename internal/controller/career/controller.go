package career

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmagwili/launchpad-jia/internal/database"
	"github.com/jmagwili/launchpad-jia/internal/model"
	"github.com/jmagwili/launchpad-jia/internal/utilities"
)

// CareerController handles career related endpoints
type CareerController struct {
	DB *database.DBinstanceStruct
}

// NewCareerController creates a new instance of CareerController
func NewCareerController(db *database.DBinstanceStruct) *CareerController {
	return &CareerController{
		DB: db,
	}
}

// CreateCareerHandler handles the creation of a new career by a recruiter.
// @Summary Create career based on given json structure
// @Description Runs the submission pipeline: shape validation, sanitization, org/plan lookup, quota check, insert
// @Tags Career
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Career body career.CreateCareerRequest true "Input career information"
// @Success 200 {object} utilities.MessageResponse "Career added, persisted record in body"
// @Failure 400 {object} utilities.ErrorResponse "Missing required field, invalid org reference, or quota exceeded"
// @Failure 404 {object} utilities.ErrorResponse "Organization not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /career [post]
func (cc *CareerController) CreateCareerHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var req CreateCareerRequest
	decoder := json.NewDecoder(c.Request.Body)
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	career, err := cc.submitCreate(&req, user.Snapshot())
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Career added successfully",
		"career":  career,
	})
}

// UpdateCareerHandler overwrites an existing career's editable fields.
// @Summary Update career by ID
// @Description Mutable fields are replaced wholesale; createdAt/createdBy are preserved
// @Tags Career
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Career ID"
// @Param Career body career.UpdateCareerRequest true "Updated career information"
// @Success 200 {object} utilities.MessageResponse "Career updated, persisted record in body"
// @Failure 400 {object} utilities.ErrorResponse "Invalid career ID or missing required field"
// @Failure 404 {object} utilities.ErrorResponse "Career not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /career/{id} [patch]
func (cc *CareerController) UpdateCareerHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid career ID"})
		return
	}

	var req UpdateCareerRequest
	decoder := json.NewDecoder(c.Request.Body)
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	career, err := cc.submitUpdate(id, &req, user.Snapshot())
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Career updated successfully",
		"career":  career,
	})
}

// GetCareerByID fetches a single career.
// @Summary Get career by ID
// @Tags Career
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Career ID"
// @Success 200 {object} model.Career "Career record"
// @Failure 404 {object} utilities.ErrorResponse "Career not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /career/{id} [get]
func (cc *CareerController) GetCareerByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid career ID"})
		return
	}

	var career model.Career
	if err := cc.DB.First(&career, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: ErrCareerNotFound.Error(), Code: utilities.CodeNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve career: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, career)
}

// GetCareers lists the careers of the caller's organization, most recently
// active first.
// @Summary List careers for the caller's organization
// @Description Optional status query narrows to "active" or "inactive"
// @Tags Career
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "Filter by career status"
// @Success 200 {array} model.Career "Career records"
// @Failure 403 {object} utilities.ErrorResponse "Caller has no organization"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /career [get]
func (cc *CareerController) GetCareers(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	if user.OrgID == nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "User does not belong to an organization"})
		return
	}

	query := cc.DB.Where("org_id = ?", *user.OrgID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var careers []model.Career
	if err := query.Order("last_activity_at DESC").Find(&careers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve careers: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, careers)
}

// respondPipelineError maps pipeline failures onto status codes and stable
// error codes the wizard can branch on.
func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingRequiredField):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error(), Code: utilities.CodeMissingField})
	case errors.Is(err, ErrInvalidOrgReference):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error(), Code: utilities.CodeInvalidOrg})
	case errors.Is(err, ErrOrganizationNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error(), Code: utilities.CodeOrgNotFound})
	case errors.Is(err, ErrQuotaExceeded):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error(), Code: utilities.CodeQuotaExceeded})
	case errors.Is(err, ErrCareerNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error(), Code: utilities.CodeNotFound})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
	}
}
