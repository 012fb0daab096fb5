package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAdminID extracts the admin ID from the Gin context
func GetAdminID(c *gin.Context) *uuid.UUID {
	adminIDVal, exists := c.Get("admin_id")
	if !exists {
		return nil
	}
	adminID, ok := adminIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &adminID
}
