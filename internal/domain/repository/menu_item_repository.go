// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMenuItemNotFound is returned when a menu item does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuFilter narrows a catalog listing. Zero values mean "no constraint".
type MenuFilter struct {
	AvailableOnly bool
	Category      string
	NameQuery     string
	MinPrice      *float64
	MaxPrice      *float64
}

// MenuItemRepository defines catalog persistence.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id int64) (*entity.MenuItem, error)

	// FindByIDs returns the items that exist among ids, keyed by id.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.MenuItem, error)

	List(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context, availableOnly bool) (int64, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}
