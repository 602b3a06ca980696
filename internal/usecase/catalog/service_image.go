package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/pauloryan091/agmais/internal/audit"
	domain "github.com/pauloryan091/agmais/internal/domain/catalog"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/imaging"
	"github.com/pauloryan091/agmais/internal/models"
)

type UploadServiceImage struct {
	repo     domain.Repository[models.Service]
	store    imaging.ObjectStore
	maxWidth int
	audit    *audit.Dispatcher
}

func NewUploadServiceImage(
	repo domain.Repository[models.Service],
	store imaging.ObjectStore,
	maxWidth int,
	audit *audit.Dispatcher,
) *UploadServiceImage {
	return &UploadServiceImage{
		repo:     repo,
		store:    store,
		maxWidth: maxWidth,
		audit:    audit,
	}
}

func (uc *UploadServiceImage) Execute(
	ctx context.Context,
	ownerID uint,
	serviceID uint,
	upload io.Reader,
) (*models.Service, error) {

	// --------------------------------------------------
	// 1️⃣ Serviço do dono
	// --------------------------------------------------
	svc, err := uc.repo.Get(ctx, ownerID, serviceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Conversão para WebP
	// --------------------------------------------------
	data, err := imaging.Normalize(upload, uc.maxWidth)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			return nil, httperr.ErrValidation("invalid_image", "Imagem inválida. Envie PNG, JPEG, GIF ou WebP")
		}
		return nil, httperr.ErrInternal("image_encode_failed", err)
	}

	// --------------------------------------------------
	// 3️⃣ Armazenamento
	// --------------------------------------------------
	key := fmt.Sprintf("services/%d/%s%s", ownerID, uuid.NewString(), imaging.Extension)

	ref, err := uc.store.Put(ctx, key, data, imaging.ContentType)
	if err != nil {
		return nil, httperr.ErrInternal("image_store_failed", err)
	}

	svc.Image = ref
	if err := uc.repo.Update(ctx, ownerID, serviceID, svc); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			OwnerID:  ownerID,
			Action:   "service_image_uploaded",
			Entity:   "service",
			EntityID: &svc.ID,
			Metadata: map[string]any{"image": ref, "bytes": len(data)},
		})
	}

	return svc, nil
}
