package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/httpresp"
	"github.com/pauloryan091/agmais/internal/middleware"
	ucAppointment "github.com/pauloryan091/agmais/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list      *ucAppointment.ListAppointments
	create    *ucAppointment.CreateAppointment
	get       *ucAppointment.GetAppointment
	update    *ucAppointment.UpdateAppointment
	remove    *ucAppointment.DeleteAppointment
	setStatus *ucAppointment.SetStatus
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	create *ucAppointment.CreateAppointment,
	get *ucAppointment.GetAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	setStatus *ucAppointment.SetStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:      list,
		create:    create,
		get:       get,
		update:    update,
		remove:    remove,
		setStatus: setStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  flexID `json:"cliente_id"`
	ServiceID flexID `json:"servico_id"`
	Date      string `json:"data_agendamento"`
	Time      string `json:"hora_agendamento"`
	Status    string `json:"status"`
}

type UpdateAppointmentRequest struct {
	ClientID  *flexID `json:"cliente_id"`
	ServiceID *flexID `json:"servico_id"`
	Date      *string `json:"data_agendamento"`
	Time      *string `json:"hora_agendamento"`
	Status    *string `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	views, err := h.list.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), p.UserID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OwnerID:   p.UserID,
		ClientID:  uint(req.ClientID),
		ServiceID: uint(req.ServiceID),
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"message":       "Agendamento realizado com sucesso! " + out.Advisory.Message,
		"email_enviado": out.Advisory.Sent,
		"id":            out.Appointment.ID,
	})
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.update.Execute(c.Request.Context(), p.UserID, id, ucAppointment.UpdateAppointmentInput{
		ClientID:  req.ClientID.ptr(),
		ServiceID: req.ServiceID.ptr(),
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Agendamento atualizado com sucesso!")
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), p.UserID, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Agendamento excluído com sucesso!")
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.setStatus.Execute(c.Request.Context(), p.UserID, id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Status atualizado para " + string(out.Status) + ". " + out.Advisory.Message,
		"email_enviado": out.Advisory.Sent,
		"agendamento":   out.Summary,
	})
}
