package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuRepo repository.MenuItemRepository
	logger   *slog.Logger
	now      func() time.Time
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	MenuRepo repository.MenuItemRepository
	Logger   *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		menuRepo: params.MenuRepo,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateItem validates the input and adds the item to the catalog.
func (srv *menuService) CreateItem(ctx context.Context, input usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	item, err := buildMenuItem(input)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := srv.menuRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create menu item", slog.String("name", item.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create menu item")
	}

	srv.log(ctx).Info("Menu item created", slog.Int64("menuItemID", item.ID), slog.String("name", item.Name))

	return item, nil
}

func buildMenuItem(input usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "menu item name is required")
	}
	if input.Price < 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidPrice)
	}

	var item *entity.MenuItem
	switch input.Kind {
	case entity.MenuItemKindCoffee:
		if !input.CoffeeType.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown coffee type %q", input.CoffeeType)
		}
		size := input.Size
		if size == "" {
			size = entity.CoffeeSizeSmall
		}
		if !size.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown coffee size %q", input.Size)
		}
		item = entity.NewCoffee(name, input.Description, input.Price, input.CoffeeType, size, input.Hot)
		for _, c := range input.Customizations {
			item.AddCustomization(c)
		}
	case entity.MenuItemKindPlain, "":
		category := strings.TrimSpace(input.Category)
		if category == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "category is required")
		}
		item = entity.NewPlainItem(name, input.Description, input.Price, category)
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown menu item kind %q", input.Kind)
	}

	if input.Available != nil {
		item.Available = *input.Available
	}

	return item, nil
}

// GetItem returns one catalog entry.
func (srv *menuService) GetItem(ctx context.Context, id int64) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapMenuItemError(err)
	}

	return item, nil
}

// ListItems lists the catalog narrowed by filter.
func (srv *menuService) ListItems(ctx context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "minimum price is above maximum price")
	}

	items, err := srv.menuRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

// Categories returns the distinct categories in the catalog.
func (srv *menuService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.menuRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CountItems counts catalog entries.
func (srv *menuService) CountItems(ctx context.Context, availableOnly bool) (int64, error) {
	count, err := srv.menuRepo.Count(ctx, availableOnly)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count menu items")
	}

	return count, nil
}

// UpdateItem applies the non-nil fields of input. Coffee options are ignored for plain items.
func (srv *menuService) UpdateItem(ctx context.Context, id int64, input usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapMenuItemError(err)
	}

	if err := applyMenuItemUpdate(item, input); err != nil {
		return nil, err
	}
	item.UpdatedAt = srv.now()

	if err := srv.menuRepo.Update(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to update menu item", slog.Int64("menuItemID", id), slog.Any("error", err))

		return nil, mapMenuItemError(err)
	}

	return item, nil
}

func applyMenuItemUpdate(item *entity.MenuItem, input usecase.UpdateMenuItemInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "menu item name is required")
		}
		item.Name = name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil && !item.SetPrice(*input.Price) {
		return errors.WithStack(domainerrors.ErrInvalidPrice)
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) != "" {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	if !item.IsCoffee() {
		return nil
	}
	if input.Size != nil {
		if !input.Size.IsValid() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown coffee size %q", *input.Size)
		}
		item.Coffee.Size = *input.Size
	}
	if input.Hot != nil {
		item.Coffee.Hot = *input.Hot
	}
	if input.Customizations != nil {
		item.ClearCustomizations()
		for _, c := range input.Customizations {
			item.AddCustomization(c)
		}
	}

	return nil
}

// SetAvailability toggles whether the item can be ordered.
func (srv *menuService) SetAvailability(ctx context.Context, id int64, available bool) error {
	if err := srv.menuRepo.SetAvailability(ctx, id, available); err != nil {
		return mapMenuItemError(err)
	}

	srv.log(ctx).Info("Menu item availability changed", slog.Int64("menuItemID", id), slog.Bool("available", available))

	return nil
}

// DeleteItem removes the item from the catalog.
func (srv *menuService) DeleteItem(ctx context.Context, id int64) error {
	if err := srv.menuRepo.Delete(ctx, id); err != nil {
		return mapMenuItemError(err)
	}

	return nil
}

func mapMenuItemError(err error) error {
	if errors.Is(err, repository.ErrMenuItemNotFound) {
		return errors.WithStack(domainerrors.ErrMenuItemNotFound)
	}

	return errors.Wrap(err, "menu item repository")
}
