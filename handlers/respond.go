package handlers

import (
	"MediPoint/services"
	"MediPoint/utils"
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// All responses share the same envelope so the frontend can branch on
// "success" without inspecting status codes.

func respond(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps service sentinels onto status codes. Validation
// errors carry their per-field breakdown in "errors".
func respondServiceError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		c.JSON(422, gin.H{"success": false, "message": "Validation failed", "errors": fieldErrors})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, 404, err.Error())
	case errors.Is(err, services.ErrPhoneTaken),
		errors.Is(err, services.ErrAccessCodeTaken),
		errors.Is(err, services.ErrSlotTaken):
		respondError(c, 409, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, 401, "Invalid credentials")
	case errors.Is(err, services.ErrInactiveAccount):
		respondError(c, 401, "Account is deactivated")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, 403, "You do not have access to this resource")
	case errors.Is(err, utils.ErrInvalidResetCode):
		respondError(c, 400, "Invalid reset code")
	default:
		respondError(c, 500, err.Error())
	}
}

// currentClaims reads the token claims the auth middleware stored on the
// context. Nil when the route is unauthenticated.
func currentClaims(c *gin.Context) *utils.TokenClaims {
	value, ok := c.Get("tokenClaims")
	if !ok {
		return nil
	}
	claims, ok := value.(*utils.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}
