package middleware

import "github.com/gin-gonic/gin"

// founderIDKey is the key under which the authenticated founder's ID is
// stored in the request context.
const founderIDKey = contextKey("founderID")

// GetFounderIDFromContext retrieves the authenticated founder ID set by
// the identity middleware.
func GetFounderIDFromContext(c *gin.Context) (string, bool) {
	founderID, ok := c.Request.Context().Value(founderIDKey).(string)
	if !ok || founderID == "" {
		return "", false
	}
	return founderID, true
}
