package middleware

import (
	"net/http"
	"strconv"

	"chat-server/internal/auth"
	"chat-server/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key the authenticated user id is stored
// under.
const ContextUserID = "user_id"

type AuthMiddleware struct {
	verifier auth.TokenVerifier
}

func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth validates the Authorization bearer token and stores the user
// id in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "authorization header is required", "")
			return
		}

		userID, err := m.verifier.Verify(header)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", "")
			return
		}

		// The verifier hands back the decimal form; handlers want the
		// numeric id.
		id, err := strconv.ParseUint(userID, 10, 32)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid user ID in token", "")
			return
		}

		c.Set(ContextUserID, uint(id))
		c.Next()
	}
}

// UserID extracts the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
