package repository

import (
	"context"

	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/domain/catalog"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

type ownedRecord interface {
	models.Client | models.Service
}

// OwnedGormRepository implements the shared CRUD contract of clients and
// services. Updates overwrite every editable column.
type OwnedGormRepository[T ownedRecord] struct {
	conn     dbpkg.Conn
	table    string
	editable []string
	notFound error
}

func NewClientGormRepository(conn dbpkg.Conn) *OwnedGormRepository[models.Client] {
	return &OwnedGormRepository[models.Client]{
		conn:     conn,
		table:    "clients",
		editable: []string{"name", "phone", "email"},
		notFound: httperr.ErrNotFound("client_not_found", "Cliente não encontrado"),
	}
}

func NewServiceGormRepository(conn dbpkg.Conn) *OwnedGormRepository[models.Service] {
	return &OwnedGormRepository[models.Service]{
		conn:     conn,
		table:    "services",
		editable: []string{"name", "description", "image"},
		notFound: httperr.ErrNotFound("service_not_found", "Serviço não encontrado"),
	}
}

func (r *OwnedGormRepository[T]) List(
	ctx context.Context,
	ownerID uint,
) ([]T, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var rows []T
	if err := db.
		Scopes(ownedBy(r.table, ownerID)).
		Order(r.table + ".name ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapInternal(r.table+"_list_failed", err)
	}
	return rows, nil
}

func (r *OwnedGormRepository[T]) Get(
	ctx context.Context,
	ownerID uint,
	id uint,
) (*T, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var row T
	if err := db.
		Scopes(ownedBy(r.table, ownerID)).
		Where(r.table+".id = ?", id).
		First(&row).Error; err != nil {
		return nil, notFoundOr(err, r.notFound, r.table+"_get_failed")
	}
	return &row, nil
}

func (r *OwnedGormRepository[T]) Create(
	ctx context.Context,
	row *T,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	if err := db.Create(row).Error; err != nil {
		return wrapInternal(r.table+"_create_failed", err)
	}
	return nil
}

func (r *OwnedGormRepository[T]) Update(
	ctx context.Context,
	ownerID uint,
	id uint,
	row *T,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	res := db.Model(new(T)).
		Scopes(ownedBy(r.table, ownerID)).
		Where(r.table+".id = ?", id).
		Select(r.editable).
		Updates(row)
	if res.Error != nil {
		return wrapInternal(r.table+"_update_failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

// Delete removes the row without looking at appointments that point to it.
func (r *OwnedGormRepository[T]) Delete(
	ctx context.Context,
	ownerID uint,
	id uint,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	res := db.
		Scopes(ownedBy(r.table, ownerID)).
		Where(r.table+".id = ?", id).
		Delete(new(T))
	if res.Error != nil {
		return wrapInternal(r.table+"_delete_failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

var (
	_ catalog.Repository[models.Client]  = (*OwnedGormRepository[models.Client])(nil)
	_ catalog.Repository[models.Service] = (*OwnedGormRepository[models.Service])(nil)
)
