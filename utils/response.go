package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// UnavailableResponse signals that a derived value cannot be computed yet.
// Insufficient history is an anticipated outcome, not an error, so it goes
// out as 200 with a reason rather than a failure status.
type UnavailableResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

func SendValidationError(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Message: err,
		Code:    http.StatusBadRequest,
	})
}

func SendUnavailable(c *gin.Context, reason string) {
	c.JSON(http.StatusOK, UnavailableResponse{
		Available: false,
		Reason:    reason,
	})
}
