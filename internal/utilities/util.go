// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/jmagwili/launchpad-jia/internal/model"
)

// Error codes carried next to messages so clients can branch without
// matching on human-readable text.
const (
	CodeMissingField  = "missing_required_field"
	CodeInvalidOrg    = "invalid_organization"
	CodeOrgNotFound   = "organization_not_found"
	CodeQuotaExceeded = "quota_exceeded"
	CodeNotFound      = "not_found"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; it returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("user information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("failed to assert type")
	}
	return user, nil
}

// ExtractBearerToken pulls the token out of the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	const bearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")

	if len(authHeader) <= len(bearerSchema) {
		return "", fmt.Errorf("invalid authorization header")
	}

	return authHeader[len(bearerSchema):], nil
}
