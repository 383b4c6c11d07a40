package response

import (
	"log"
	"net/http"

	"anoa.com/kosthub/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// OK sends a success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created sends a success envelope with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// Error sends a standardized error envelope. Internal errors are logged and
// masked; the caller never sees raw storage detail.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		message = apperror.ErrInternal.Error()
	}

	c.JSON(code, gin.H{"success": false, "error": message})
}

// Denied sends a guard denial with the redirect hint page consumers follow.
// roleHome is the home surface of the caller's role ("" when unknown).
func Denied(c *gin.Context, err error, roleHome string) {
	code := apperror.MapErrorToStatus(err)
	body := gin.H{"success": false, "error": err.Error()}
	if redirect := apperror.RedirectFor(err, roleHome); redirect != "" {
		body["redirect"] = redirect
	}
	c.AbortWithStatusJSON(code, body)
}

// ValidationError sends a rejected-input message formatted for the user.
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}
