package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/httpresp"
	"github.com/pauloryan091/agmais/internal/middleware"
	ucDashboard "github.com/pauloryan091/agmais/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats         *ucDashboard.GetStats
	full          *ucDashboard.GetDashboard
	search        *ucDashboard.Search
	notifications *ucDashboard.ListNotifications
	activity      *ucDashboard.RecentActivity
}

func NewDashboardHandler(
	stats *ucDashboard.GetStats,
	full *ucDashboard.GetDashboard,
	search *ucDashboard.Search,
	notifications *ucDashboard.ListNotifications,
	activity *ucDashboard.RecentActivity,
) *DashboardHandler {
	return &DashboardHandler{
		stats:         stats,
		full:          full,
		search:        search,
		notifications: notifications,
		activity:      activity,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	stats, err := h.stats.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, stats)
}

func (h *DashboardHandler) Full(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	dash, err := h.full.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dash)
}

func (h *DashboardHandler) Search(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	res, err := h.search.Execute(c.Request.Context(), p.UserID, c.Param("termo"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *DashboardHandler) Notifications(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	items, err := h.notifications.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "notificacoes": items})
}

func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	items, err := h.activity.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "atividades": items})
}
