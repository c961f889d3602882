// auth.go - Bearer-token authentication middleware
//
// Authentication Flow:
// 1. Extract the bearer token from the Authorization header
// 2. Verify the token signature and extract the email claim
// 3. Load the matching user from the database
// 4. Attach the user (password cleared) to the request context
//
// Any step can short-circuit the request: 401 for a missing or invalid
// token, 404 when the token's user no longer exists.

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (401, 404)
	"strings"  // String operations (for header parsing)

	"quickmed-backend/auth"   // Token verification
	"quickmed-backend/models" // User model

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
	"gorm.io/gorm"             // Database handle
)

// UserKey - Context key under which the authenticated user is stored.
const UserKey = "user"

// Auth returns a Gin middleware that authenticates bearer tokens.
// It must run before any handler that reads user-scoped data
// (profile info, chat history).
func Auth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		// Look for the standard "Bearer token" format in HTTP headers
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided, please login first."})
			return
		}

		// STEP 2: Verify the token and extract the email claim
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		email, err := auth.Verify(tokenStr, secret)       // Signature check only, no session store
		if err != nil {                                   // If token is invalid or expired
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token, please login again."})
			return
		}

		// STEP 3: Load the user behind the email
		// A valid signature is not enough; the account must still exist.
		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		// STEP 4: Attach the user to the context for the handlers
		user.Password = "" // The hash never leaves the store
		c.Set(UserKey, user)

		c.Next() // Continue to next handler (authentication successful)
	}
}
