package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/httpresp"
	"github.com/pauloryan091/agmais/internal/session"
	ucAuth "github.com/pauloryan091/agmais/internal/usecase/auth"
)

type AuthHandler struct {
	register     *ucAuth.Register
	login        *ucAuth.Login
	logout       *ucAuth.Logout
	cookieSecure bool
	cookieMaxAge int
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	logout *ucAuth.Logout,
	sessions *session.Manager,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		login:        login,
		logout:       logout,
		cookieSecure: cookieSecure,
		cookieMaxAge: int(sessions.TTL().Seconds()),
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Cadastro realizado com sucesso!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.setCookie(c, out.Token, h.cookieMaxAge)
	httpresp.Message(c, http.StatusOK, "Login realizado com sucesso!")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)

	if err := h.logout.Execute(c.Request.Context(), token); err != nil {
		_ = c.Error(err)
	}

	h.setCookie(c, "", -1)
	httpresp.Message(c, http.StatusOK, "Logout realizado com sucesso!")
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
