package usecase

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
)

// CreateIngredientInput defines the data required to stock a new ingredient.
// A zero MaximumStock defaults to ten times the minimum.
type CreateIngredientInput struct {
	Name           string
	Unit           entity.Unit
	CurrentStock   float64
	MinimumStock   float64
	MaximumStock   float64
	CostPerUnit    float64
	ExpirationDate *time.Time
	Supplier       string
}

// UpdateIngredientInput carries the fields to change. Nil fields are left untouched.
// Stock levels change through AddStock and RemoveStock only.
type UpdateIngredientInput struct {
	Name           *string
	Unit           *entity.Unit
	MinimumStock   *float64
	MaximumStock   *float64
	CostPerUnit    *float64
	ExpirationDate *time.Time
	Supplier       *string
	Active         *bool
}

// InventoryUsecase defines the ingredient stock ledger.
type InventoryUsecase interface {
	CreateIngredient(ctx context.Context, input CreateIngredientInput) (*entity.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*entity.Ingredient, error)
	ListIngredients(ctx context.Context, filter repository.IngredientFilter) ([]*entity.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, input UpdateIngredientInput) (*entity.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error

	// AddStock and RemoveStock are all-or-nothing and lock the ingredient row.
	AddStock(ctx context.Context, id int64, quantity float64) (*entity.Ingredient, error)
	RemoveStock(ctx context.Context, id int64, quantity float64) (*entity.Ingredient, error)

	LowStock(ctx context.Context) ([]*entity.Ingredient, error)
	OutOfStock(ctx context.Context) ([]*entity.Ingredient, error)
	Expired(ctx context.Context) ([]*entity.Ingredient, error)

	// ExpiringSoon lists ingredients expiring within days. Non-positive days use the configured window.
	ExpiringSoon(ctx context.Context, days int) ([]*entity.Ingredient, error)

	Suppliers(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*entity.IngredientStats, error)
}
