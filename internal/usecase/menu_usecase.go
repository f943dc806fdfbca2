// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
)

// CreateMenuItemInput defines the data required to add a catalog item.
// Coffee fields are only read when Kind is COFFEE.
type CreateMenuItemInput struct {
	Name           string
	Description    string
	Price          float64
	Category       string
	Kind           entity.MenuItemKind
	CoffeeType     entity.CoffeeType
	Size           entity.CoffeeSize
	Hot            bool
	Customizations []string
	Available      *bool
}

// UpdateMenuItemInput carries the fields to change. Nil fields are left untouched.
type UpdateMenuItemInput struct {
	Name           *string
	Description    *string
	Price          *float64
	Category       *string
	Size           *entity.CoffeeSize
	Hot            *bool
	Customizations []string
	Available      *bool
}

// MenuUsecase defines catalog management.
type MenuUsecase interface {
	CreateItem(ctx context.Context, input CreateMenuItemInput) (*entity.MenuItem, error)
	GetItem(ctx context.Context, id int64) (*entity.MenuItem, error)

	// ListItems covers the full, available, per-category, name search and price range listings.
	ListItems(ctx context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error)

	Categories(ctx context.Context) ([]string, error)
	CountItems(ctx context.Context, availableOnly bool) (int64, error)
	UpdateItem(ctx context.Context, id int64, input UpdateMenuItemInput) (*entity.MenuItem, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	DeleteItem(ctx context.Context, id int64) error
}
