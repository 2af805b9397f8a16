package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRoles extracts the user roles from the Gin context
func GetUserRoles(c *gin.Context) []string {
	roles, exists := c.Get("user_roles")
	if !exists {
		return nil
	}
	return roles.([]string)
}

// GetLinkedResidentID extracts the linked resident ID for resident accounts
func GetLinkedResidentID(c *gin.Context) *uuid.UUID {
	residentIDVal, exists := c.Get("linked_resident_id")
	if !exists {
		return nil
	}
	residentID, ok := residentIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &residentID
}

// HasRole checks if the authenticated user carries a role
func HasRole(c *gin.Context, role string) bool {
	for _, r := range GetUserRoles(c) {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff checks if the user is an admin or staff member
func IsStaff(c *gin.Context) bool {
	return HasRole(c, "admin") || HasRole(c, "staff")
}
