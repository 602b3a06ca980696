package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
)

// StoreProbe reports whether the backing store is present.
type StoreProbe interface {
	Exists() bool
}

// RequireStore answers 503 for every request while the store is missing.
func RequireStore(store StoreProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Exists() {
			httperr.Abort(c, httperr.ErrStoreUnavailable(nil))
			return
		}
		c.Next()
	}
}
