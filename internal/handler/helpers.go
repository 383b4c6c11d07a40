package handler

import (
	"anoa.com/kosthub/pkg/response"
	"anoa.com/kosthub/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses a UUID path parameter through the shared schema; jalur
// filter tidak boleh menerima ID mentah.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := validation.UUID(c.Param(name))
	if err != nil {
		response.ValidationError(c, "ID tidak valid")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.ValidationError(c, validation.FormatValidationError(err))
		return false
	}
	return true
}
