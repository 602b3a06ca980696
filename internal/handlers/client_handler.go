package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/httpresp"
	"github.com/pauloryan091/agmais/internal/middleware"
	"github.com/pauloryan091/agmais/internal/models"
	"github.com/pauloryan091/agmais/internal/usecase/catalog"
)

type ClientHandler struct {
	clients *catalog.Catalog[models.Client]
}

func NewClientHandler(clients *catalog.Catalog[models.Client]) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type ClientRequest struct {
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
	Email string `json:"email"`
}

func (r ClientRequest) model() *models.Client {
	return &models.Client{Name: r.Name, Phone: r.Phone, Email: r.Email}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	clients, err := h.clients.List(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clients.Get(c.Request.Context(), p.UserID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clients.Create(c.Request.Context(), p.UserID, req.model())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Cliente adicionado com sucesso!",
		"id":      client.ID,
	})
}

func (h *ClientHandler) Update(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.clients.Update(c.Request.Context(), p.UserID, id, req.model()); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Cliente atualizado com sucesso!")
}

func (h *ClientHandler) Delete(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), p.UserID, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Cliente excluído com sucesso!")
}
