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

type ServiceHandler struct {
	services *catalog.Catalog[models.Service]
	upload   *catalog.UploadServiceImage
}

func NewServiceHandler(
	services *catalog.Catalog[models.Service],
	upload *catalog.UploadServiceImage,
) *ServiceHandler {
	return &ServiceHandler{services: services, upload: upload}
}

type ServiceRequest struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Image       string `json:"imagem"`
}

func (r ServiceRequest) model() *models.Service {
	return &models.Service{Name: r.Name, Description: r.Description, Image: r.Image}
}

func (h *ServiceHandler) List(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	services, err := h.services.List(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.services.Get(c.Request.Context(), p.UserID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.services.Create(c.Request.Context(), p.UserID, req.model())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Serviço adicionado com sucesso!",
		"id":      svc.ID,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.services.Update(c.Request.Context(), p.UserID, id, req.model()); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Serviço atualizado com sucesso!")
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), p.UserID, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Serviço excluído com sucesso!")
}

// UploadImage takes a multipart "imagem" field.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("imagem")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Envie o arquivo no campo imagem")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "image_required", "Envie o arquivo no campo imagem")
		return
	}
	defer f.Close()

	svc, err := h.upload.Execute(c.Request.Context(), p.UserID, id, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Imagem atualizada com sucesso!",
		"imagem":  svc.Image,
	})
}
