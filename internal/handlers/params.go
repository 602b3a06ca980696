package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pauloryan091/agmais/internal/httperr"
)

// idParam reads a positive numeric path parameter. On failure it has
// already written the 400 response.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos")
		return false
	}
	return true
}

// flexID accepts 3 and "3": form-driven clients send ids as strings.
type flexID uint

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = flexID(n)
	return nil
}

// ptr treats an absent, empty or zero id as not supplied.
func (f *flexID) ptr() *uint {
	if f == nil || *f == 0 {
		return nil
	}
	v := uint(*f)
	return &v
}
