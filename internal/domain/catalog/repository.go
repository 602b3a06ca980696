package catalog

import (
	"context"
)

// Repository is the owner-scoped CRUD contract shared by clients and
// services. Rows of another owner behave as missing.
type Repository[T any] interface {
	List(
		ctx context.Context,
		ownerID uint,
	) ([]T, error)

	Get(
		ctx context.Context,
		ownerID uint,
		id uint,
	) (*T, error)

	Create(
		ctx context.Context,
		row *T,
	) error

	// Update overwrites every editable field.
	Update(
		ctx context.Context,
		ownerID uint,
		id uint,
		row *T,
	) error

	Delete(
		ctx context.Context,
		ownerID uint,
		id uint,
	) error
}
