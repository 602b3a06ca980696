package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/session"
)

const ContextPrincipal = "principal"

// Principal is the authenticated caller. Handlers pass UserID explicitly
// to every use case.
type Principal struct {
	UserID    uint
	Name      string
	Email     string
	SessionID string
	Session   *session.Session
}

// AuthMiddleware resolves the session cookie. Any failure ends the request
// with 401.
func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(session.CookieName)

		s, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		c.Set(ContextPrincipal, &Principal{
			UserID:    s.UserID,
			Name:      s.Name,
			Email:     s.Email,
			SessionID: s.ID,
			Session:   s,
		})

		c.Next()
	}
}

// PrincipalFrom must only be called behind AuthMiddleware.
func PrincipalFrom(c *gin.Context) *Principal {
	return c.MustGet(ContextPrincipal).(*Principal)
}
