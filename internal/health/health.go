package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Source hands out the pool to probe. It fails while the store is missing.
type Source func(ctx context.Context) (*sql.DB, error)

type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Handler answers 200 while the database answers a ping within timeout and
// 503 otherwise.
func Handler(src Source, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		if err := ping(ctx, src); err != nil {
			c.JSON(http.StatusServiceUnavailable, Status{
				Status:   "degraded",
				Database: "down",
				Error:    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, Status{Status: "ok", Database: "up"})
	}
}

func ping(ctx context.Context, src Source) error {
	db, err := src(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}
