package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/middleware"
	ucAuth "github.com/pauloryan091/agmais/internal/usecase/auth"
)

type MeHandler struct {
	profile *ucAuth.GetProfile
	update  *ucAuth.UpdateProfile
}

func NewMeHandler(
	profile *ucAuth.GetProfile,
	update *ucAuth.UpdateProfile,
) *MeHandler {
	return &MeHandler{profile: profile, update: update}
}

type MeResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type UpdateMeRequest struct {
	Name            string `json:"nome"`
	Email           string `json:"email"`
	CurrentPassword string `json:"senha_atual"`
	NewPassword     string `json:"nova_senha"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	u, err := h.profile.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{ID: u.ID, Name: u.Name, Email: u.Email})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	var req UpdateMeRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.update.Execute(c.Request.Context(), p.Session, ucAuth.UpdateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Dados atualizados com sucesso!",
		"usuario": MeResponse{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}
