package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ta-portal-api/internal/middleware"
	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
)

// serverErrorBody is the historical internal-failure payload shared by most
// portal endpoints. createSlot carries its own body.
var serverErrorBody = gin.H{"msg": "Server error"}

// legacyMessage answers a service error in the portal's message contract:
// domain failures keep their message and, with few exceptions, go out as
// HTTP 200 so legacy clients can branch on the msg string. Messages listed
// in elevate keep a real 404 instead; anything unrecognized is an internal
// failure and sends the endpoint's historical 500 body.
func legacyMessage(c *gin.Context, err error, internalBody gin.H, elevate ...string) {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.ErrNotFound.Code:
			status := http.StatusOK
			for _, msg := range elevate {
				if appErr.Message == msg {
					status = http.StatusNotFound
					break
				}
			}
			c.JSON(status, gin.H{"msg": appErr.Message})
			return
		case appErrors.ErrConflict.Code, appErrors.ErrForbidden.Code, appErrors.ErrPreconditionFailed.Code:
			c.JSON(http.StatusOK, gin.H{"msg": appErr.Message})
			return
		case appErrors.ErrValidation.Code, appErrors.ErrUnauthorized.Code:
			c.JSON(appErr.Status, gin.H{"msg": appErr.Message})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, internalBody)
}

// claimsFromContext returns the JWT claims the auth guard stored, or nil
// on an unguarded route.
func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
