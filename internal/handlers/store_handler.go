package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/httperr"
)

// StoreHandler reports the state of the backing store. It is public and
// never lists user rows.
type StoreHandler struct {
	store *dbpkg.Store
}

func NewStoreHandler(store *dbpkg.Store) *StoreHandler {
	return &StoreHandler{store: store}
}

type StoreReport struct {
	Exists  bool             `json:"existe"`
	Tables  []string         `json:"tabelas,omitempty"`
	Counts  map[string]int64 `json:"contagens,omitempty"`
	Message string           `json:"mensagem,omitempty"`
	Success bool             `json:"sucesso"`
}

func (h *StoreHandler) Check(c *gin.Context) {
	db, err := h.store.Session(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, StoreReport{
			Exists:  false,
			Message: "Banco de dados não encontrado",
		})
		return
	}

	report, err := dbpkg.Inspect(db)
	if err != nil {
		httperr.Respond(c, httperr.ErrInternal("store_inspect_failed", err))
		return
	}

	c.JSON(http.StatusOK, StoreReport{
		Exists:  true,
		Tables:  report.Tables,
		Counts:  report.Counts,
		Success: true,
	})
}
