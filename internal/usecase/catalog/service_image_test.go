package catalog

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/dbtest"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/imaging"
	"github.com/pauloryan091/agmais/internal/infra/repository"
	"github.com/pauloryan091/agmais/internal/models"
)

func TestUploadServiceImage(t *testing.T) {
	conn, _ := dbtest.Conn(t)
	repo := repository.NewServiceGormRepository(conn)
	svc, err := NewServices(repo, nil).Create(t.Context(), 1, &models.Service{Name: "Haircut", Description: "30 min"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 10))))

	uc := NewUploadServiceImage(repo, imaging.NewLocalStore(t.TempDir(), "/uploads"), 1024, nil)

	got, err := uc.Execute(t.Context(), 1, svc.ID, &buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.Image, "/uploads/services/1/"))
	assert.True(t, strings.HasSuffix(got.Image, ".webp"))
	assert.Equal(t, "30 min", got.Description)

	_, err = uc.Execute(t.Context(), 1, svc.ID, strings.NewReader("nope"))
	assert.True(t, httperr.HasCode(err, "invalid_image"))

	_, err = uc.Execute(t.Context(), 2, svc.ID, strings.NewReader("nope"))
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
}
