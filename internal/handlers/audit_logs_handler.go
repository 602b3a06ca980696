package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/audit"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/httpresp"
	"github.com/pauloryan091/agmais/internal/middleware"
	"github.com/pauloryan091/agmais/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

type AuditLogsResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   parseDay(c.Query("from")),
		To:     parseDay(c.Query("to")),
		Page:   page,
		Limit:  limit,
	}

	logs, total, err := h.logger.List(c.Request.Context(), p.UserID, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, AuditLogsResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}

// parseDay ignores malformed dates.
func parseDay(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &d
}
