// Package crud holds the generic create/read/update/delete contract shared by
// entity repositories, and a small sqlx-backed table helper implementing the
// parts of it that do not depend on the entity's columns.
package crud

import "context"

// Repository is the CRUD contract every entity store satisfies. T is the
// stored entity and P its partial update. Absence is reported as
// common.ErrorNotFound.
type Repository[T any, P any] interface {
	Create(ctx context.Context, item *T) (*T, error)
	ReadAll(ctx context.Context) ([]*T, error)
	Read(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) (*T, error)
}
