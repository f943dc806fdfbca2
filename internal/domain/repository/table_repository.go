package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrTableNotFound is returned when a table does not exist.
	ErrTableNotFound = errors.New("table not found")
	// ErrTableAlreadyExists is returned when a table number is taken.
	ErrTableAlreadyExists = errors.New("table already exists")
)

// TableFilter narrows a table listing. Zero values mean "no constraint".
type TableFilter struct {
	Status      *entity.TableStatus
	MinCapacity int
}

// TableRepository defines seating persistence. Tables are keyed by their number.
type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	FindByNumber(ctx context.Context, number int) (*entity.Table, error)
	FindByNumberForUpdate(ctx context.Context, number int) (*entity.Table, error)

	// List returns tables ordered by capacity, then number.
	List(ctx context.Context, filter TableFilter) ([]*entity.Table, error)

	Update(ctx context.Context, table *entity.Table) error
	Delete(ctx context.Context, number int) error
}
