package catalog

import (
	"context"
	"strings"

	"github.com/pauloryan091/agmais/internal/audit"
	domain "github.com/pauloryan091/agmais/internal/domain/catalog"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

type record interface {
	models.Client | models.Service
}

// Catalog runs the CRUD use cases of one owned resource.
type Catalog[T record] struct {
	repo    domain.Repository[T]
	audit   *audit.Dispatcher
	entity  string
	prepare func(row *T, ownerID uint) error
	idOf    func(row *T) uint
}

var errNameRequired = httperr.ErrValidation("name_required", "Nome é obrigatório")

func NewClients(
	repo domain.Repository[models.Client],
	audit *audit.Dispatcher,
) *Catalog[models.Client] {
	return &Catalog[models.Client]{
		repo:   repo,
		audit:  audit,
		entity: "client",
		prepare: func(c *models.Client, ownerID uint) error {
			c.Name = strings.TrimSpace(c.Name)
			c.Phone = strings.TrimSpace(c.Phone)
			c.Email = strings.TrimSpace(c.Email)
			if c.Name == "" {
				return errNameRequired
			}
			c.OwnerUserID = ownerID
			return nil
		},
		idOf: func(c *models.Client) uint { return c.ID },
	}
}

func NewServices(
	repo domain.Repository[models.Service],
	audit *audit.Dispatcher,
) *Catalog[models.Service] {
	return &Catalog[models.Service]{
		repo:   repo,
		audit:  audit,
		entity: "service",
		prepare: func(s *models.Service, ownerID uint) error {
			s.Name = strings.TrimSpace(s.Name)
			s.Description = strings.TrimSpace(s.Description)
			s.Image = strings.TrimSpace(s.Image)
			if s.Name == "" {
				return errNameRequired
			}
			s.OwnerUserID = ownerID
			return nil
		},
		idOf: func(s *models.Service) uint { return s.ID },
	}
}

// ======================================================
// READ
// ======================================================

func (uc *Catalog[T]) List(ctx context.Context, ownerID uint) ([]T, error) {
	return uc.repo.List(ctx, ownerID)
}

func (uc *Catalog[T]) Get(ctx context.Context, ownerID, id uint) (*T, error) {
	return uc.repo.Get(ctx, ownerID, id)
}

// ======================================================
// WRITE
// ======================================================

func (uc *Catalog[T]) Create(
	ctx context.Context,
	ownerID uint,
	row *T,
) (*T, error) {

	if err := uc.prepare(row, ownerID); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	uc.record(ownerID, uc.entity+"_created", uc.idOf(row))
	return row, nil
}

// Update replaces every editable field; absent fields become empty.
func (uc *Catalog[T]) Update(
	ctx context.Context,
	ownerID uint,
	id uint,
	row *T,
) (*T, error) {

	if err := uc.prepare(row, ownerID); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ownerID, id, row); err != nil {
		return nil, err
	}

	uc.record(ownerID, uc.entity+"_updated", id)
	return uc.repo.Get(ctx, ownerID, id)
}

// Delete leaves appointments that reference the row untouched.
func (uc *Catalog[T]) Delete(ctx context.Context, ownerID, id uint) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	uc.record(ownerID, uc.entity+"_deleted", id)
	return nil
}

func (uc *Catalog[T]) record(ownerID uint, action string, id uint) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   action,
		Entity:   uc.entity,
		EntityID: &id,
	})
}
