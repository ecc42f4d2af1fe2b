package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/models"
)

// Fail sends the standard failure envelope.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// FailWithError maps an error to its HTTP status and sends the failure
// envelope. An ambiguous doctor match is semantically a conflict but is
// surfaced as 404, matching the observed behavior of the API.
func FailWithError(c *gin.Context, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	switch appErr.Kind {
	case models.KindValidation:
		Fail(c, http.StatusBadRequest, appErr.Message)
	case models.KindNotFound, models.KindConflict:
		Fail(c, http.StatusNotFound, appErr.Message)
	default:
		Fail(c, http.StatusInternalServerError, appErr.Message)
	}
}

// Success sends a success envelope with optional extra payload fields.
func Success(c *gin.Context, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
