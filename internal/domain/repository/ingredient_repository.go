package repository

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrIngredientNotFound is returned when an ingredient does not exist.
var ErrIngredientNotFound = errors.New("ingredient not found")

// IngredientFilter narrows an ingredient listing. Zero values mean "no constraint".
type IngredientFilter struct {
	ActiveOnly bool
	Supplier   string
	NameQuery  string
	LowStock   bool
	OutOfStock bool

	// ExpiringBefore keeps ingredients whose expiration date is on or before the given day.
	ExpiringBefore *time.Time
}

// IngredientRepository defines inventory persistence.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	FindByID(ctx context.Context, id int64) (*entity.Ingredient, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Ingredient, error)
	List(ctx context.Context, filter IngredientFilter) ([]*entity.Ingredient, error)
	Suppliers(ctx context.Context) ([]string, error)
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id int64) error
}
