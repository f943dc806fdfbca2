package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultExpiringSoonDays = 7

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager        repository.TransactionManager
	ingredientRepo   repository.IngredientRepository
	expiringSoonDays int
	logger           *slog.Logger
	now              func() time.Time
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	IngredientRepo repository.IngredientRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	expiringSoonDays := defaultExpiringSoonDays
	if params.Config != nil && params.Config.Inventory != nil && params.Config.Inventory.ExpiringSoonDays > 0 {
		expiringSoonDays = params.Config.Inventory.ExpiringSoonDays
	}

	return &inventoryService{
		txManager:        params.TxManager,
		ingredientRepo:   params.IngredientRepo,
		expiringSoonDays: expiringSoonDays,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateIngredient validates and stocks a new ingredient.
func (srv *inventoryService) CreateIngredient(ctx context.Context, input usecase.CreateIngredientInput) (*entity.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, errors.Wrap(domainerrors.ErrInvalidIngredient, "name is required")
	case !input.Unit.IsValid():
		return nil, errors.Wrapf(domainerrors.ErrInvalidIngredient, "unknown unit %q", input.Unit)
	case input.CurrentStock < 0 || input.MinimumStock < 0 || input.MaximumStock < 0 || input.CostPerUnit < 0:
		return nil, errors.Wrap(domainerrors.ErrInvalidIngredient, "stock levels and cost must not be negative")
	}

	ingredient := entity.NewIngredient(name, input.Unit, input.CurrentStock, input.MinimumStock, input.MaximumStock, input.CostPerUnit)
	if ingredient.CurrentStock > ingredient.MaximumStock {
		return nil, errors.WithStack(domainerrors.ErrStockLimitExceeded)
	}
	ingredient.ExpirationDate = input.ExpirationDate
	ingredient.Supplier = strings.TrimSpace(input.Supplier)

	now := srv.now()
	ingredient.CreatedAt = now
	ingredient.UpdatedAt = now

	if err := srv.ingredientRepo.Create(ctx, ingredient); err != nil {
		srv.log(ctx).Error("Failed to create ingredient", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create ingredient")
	}

	srv.log(ctx).Info("Ingredient created", slog.Int64("ingredientID", ingredient.ID), slog.String("name", name))

	return ingredient, nil
}

// GetIngredient returns one ingredient.
func (srv *inventoryService) GetIngredient(ctx context.Context, id int64) (*entity.Ingredient, error) {
	ingredient, err := srv.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapIngredientError(err)
	}

	return ingredient, nil
}

// ListIngredients lists ingredients narrowed by filter.
func (srv *inventoryService) ListIngredients(ctx context.Context, filter repository.IngredientFilter) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ingredientRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

// UpdateIngredient applies the non-nil fields of input.
func (srv *inventoryService) UpdateIngredient(ctx context.Context, id int64, input usecase.UpdateIngredientInput) (*entity.Ingredient, error) {
	return srv.changeIngredient(ctx, id, func(ingredient *entity.Ingredient) error {
		return applyIngredientUpdate(ingredient, input)
	})
}

func applyIngredientUpdate(ingredient *entity.Ingredient, input usecase.UpdateIngredientInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errors.Wrap(domainerrors.ErrInvalidIngredient, "name is required")
		}
		ingredient.Name = name
	}
	if input.Unit != nil {
		if !input.Unit.IsValid() {
			return errors.Wrapf(domainerrors.ErrInvalidIngredient, "unknown unit %q", *input.Unit)
		}
		ingredient.Unit = *input.Unit
	}
	if input.MinimumStock != nil {
		ingredient.MinimumStock = *input.MinimumStock
	}
	if input.MaximumStock != nil {
		ingredient.MaximumStock = *input.MaximumStock
	}
	if input.CostPerUnit != nil {
		ingredient.CostPerUnit = *input.CostPerUnit
	}
	if input.ExpirationDate != nil {
		ingredient.ExpirationDate = input.ExpirationDate
	}
	if input.Supplier != nil {
		ingredient.Supplier = strings.TrimSpace(*input.Supplier)
	}
	if input.Active != nil {
		ingredient.Active = *input.Active
	}

	if ingredient.MinimumStock < 0 || ingredient.CostPerUnit < 0 || ingredient.MaximumStock < ingredient.MinimumStock {
		return errors.Wrap(domainerrors.ErrInvalidIngredient, "minimum must be between zero and maximum")
	}

	return nil
}

// DeleteIngredient removes an ingredient.
func (srv *inventoryService) DeleteIngredient(ctx context.Context, id int64) error {
	if err := srv.ingredientRepo.Delete(ctx, id); err != nil {
		return mapIngredientError(err)
	}

	return nil
}

// AddStock receives quantity units. The result must not exceed the maximum level.
func (srv *inventoryService) AddStock(ctx context.Context, id int64, quantity float64) (*entity.Ingredient, error) {
	if quantity <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	return srv.changeIngredient(ctx, id, func(ingredient *entity.Ingredient) error {
		if !ingredient.AddStock(quantity) {
			return errors.Wrapf(domainerrors.ErrStockLimitExceeded, "%s holds at most %.2f", ingredient.Name, ingredient.MaximumStock)
		}

		return nil
	})
}

// RemoveStock consumes quantity units. The stock must cover the quantity.
func (srv *inventoryService) RemoveStock(ctx context.Context, id int64, quantity float64) (*entity.Ingredient, error) {
	if quantity <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	return srv.changeIngredient(ctx, id, func(ingredient *entity.Ingredient) error {
		if !ingredient.RemoveStock(quantity) {
			return errors.Wrapf(domainerrors.ErrInsufficientStock, "%s has %.2f on hand", ingredient.Name, ingredient.CurrentStock)
		}

		return nil
	})
}

// changeIngredient locks the ingredient row, applies change and saves the result.
func (srv *inventoryService) changeIngredient(ctx context.Context, id int64, change func(ingredient *entity.Ingredient) error) (*entity.Ingredient, error) {
	var changed *entity.Ingredient
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ingredientRepo := repoFactory.NewIngredientRepository()

		ingredient, err := ingredientRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapIngredientError(err)
		}

		if err := change(ingredient); err != nil {
			return err
		}
		ingredient.UpdatedAt = srv.now()

		if err := ingredientRepo.Update(ctx, ingredient); err != nil {
			return mapIngredientError(err)
		}
		changed = ingredient

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change ingredient", slog.Int64("ingredientID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to change ingredient")
	}

	if changed.IsLowStock() {
		srv.log(ctx).Warn("Ingredient stock is low",
			slog.Int64("ingredientID", id),
			slog.String("name", changed.Name),
			slog.Float64("currentStock", changed.CurrentStock),
		)
	}

	return changed, nil
}

// LowStock lists active ingredients at or below their minimum level.
func (srv *inventoryService) LowStock(ctx context.Context) ([]*entity.Ingredient, error) {
	return srv.ListIngredients(ctx, repository.IngredientFilter{ActiveOnly: true, LowStock: true})
}

// OutOfStock lists active ingredients with nothing on hand.
func (srv *inventoryService) OutOfStock(ctx context.Context) ([]*entity.Ingredient, error) {
	return srv.ListIngredients(ctx, repository.IngredientFilter{ActiveOnly: true, OutOfStock: true})
}

// Expired lists ingredients whose expiration day has passed.
func (srv *inventoryService) Expired(ctx context.Context) ([]*entity.Ingredient, error) {
	now := srv.now()
	yesterday := now.AddDate(0, 0, -1)

	ingredients, err := srv.ListIngredients(ctx, repository.IngredientFilter{ExpiringBefore: &yesterday})
	if err != nil {
		return nil, err
	}

	return filterIngredients(ingredients, func(i *entity.Ingredient) bool { return i.IsExpired(now) }), nil
}

// ExpiringSoon lists ingredients that expire within days but have not expired yet.
func (srv *inventoryService) ExpiringSoon(ctx context.Context, days int) ([]*entity.Ingredient, error) {
	if days <= 0 {
		days = srv.expiringSoonDays
	}

	now := srv.now()
	horizon := now.AddDate(0, 0, days)

	ingredients, err := srv.ListIngredients(ctx, repository.IngredientFilter{ExpiringBefore: &horizon})
	if err != nil {
		return nil, err
	}

	return filterIngredients(ingredients, func(i *entity.Ingredient) bool { return i.IsExpiringSoon(now, days) }), nil
}

func filterIngredients(ingredients []*entity.Ingredient, keep func(*entity.Ingredient) bool) []*entity.Ingredient {
	kept := make([]*entity.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if keep(ingredient) {
			kept = append(kept, ingredient)
		}
	}

	return kept
}

// Suppliers lists the distinct suppliers.
func (srv *inventoryService) Suppliers(ctx context.Context) ([]string, error) {
	suppliers, err := srv.ingredientRepo.Suppliers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

// Stats summarizes the active inventory.
func (srv *inventoryService) Stats(ctx context.Context) (*entity.IngredientStats, error) {
	ingredients, err := srv.ListIngredients(ctx, repository.IngredientFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	now := srv.now()
	stats := &entity.IngredientStats{TotalIngredients: int64(len(ingredients))}
	for _, ingredient := range ingredients {
		stats.TotalValue += ingredient.StockValue()
		if ingredient.IsLowStock() {
			stats.LowStock++
		}
		if ingredient.IsOutOfStock() {
			stats.OutOfStock++
		}
		if ingredient.IsExpired(now) {
			stats.Expired++
		}
	}

	return stats, nil
}

func mapIngredientError(err error) error {
	if errors.Is(err, repository.ErrIngredientNotFound) {
		return errors.WithStack(domainerrors.ErrIngredientNotFound)
	}

	return errors.Wrap(err, "ingredient repository")
}
