package middleware

import "github.com/gin-gonic/gin"

// accountIDKey is the key used to store the authenticated account's ID in the context.
// Using a custom type prevents collisions.
const accountIDKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin context.
// It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	accountIDVal, exists := c.Get(string(accountIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(accountIDKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	accountID, ok := accountIDVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return "", false
	}

	return accountID, true
}
