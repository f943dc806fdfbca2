package rdb

import (
	"context"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// menuItemRepository implements the repository.MenuItemRepository interface.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{
		db: db,
	}
}

// Create persists a new catalog item and writes back the generated ID.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required menu item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a menu item by its ID.
func (repo *menuItemRepository) FindByID(ctx context.Context, id int64) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

// FindByIDs retrieves the menu items that exist among ids.
func (repo *menuItemRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.MenuItem, error) {
	items := make(map[int64]*entity.MenuItem, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by IDs")
	}

	for _, itemM := range itemModels {
		items[itemM.ID] = toMenuItemDomain(itemM)
	}

	return items, nil
}

// List retrieves catalog items matching filter, ordered by category and name.
func (repo *menuItemRepository) List(ctx context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error) {
	query := repo.db.WithContext(ctx).Model(&model.MenuItemModel{})

	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.NameQuery != "" {
		query = query.Where("LOWER(name) LIKE ?", likePattern(filter.NameQuery))
	}
	if filter.MinPrice != nil {
		query = query.Where("base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("base_price <= ?", *filter.MaxPrice)
	}

	var itemModels []*model.MenuItemModel
	if err := query.Order("category ASC, name ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// Categories returns the distinct categories in alphabetical order.
func (repo *menuItemRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}

	return categories, nil
}

// Count returns the number of catalog items, optionally only the available ones.
func (repo *menuItemRepository) Count(ctx context.Context, availableOnly bool) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MenuItemModel{})
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count menu items")
	}

	return count, nil
}

// Update overwrites every mutable column of the item.
func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(itemM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// SetAvailability toggles whether the item can be ordered.
func (repo *menuItemRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", id).
		Update("is_available", available)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update menu item availability")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// Delete removes a menu item. Items referenced by order lines cannot be deleted.
func (repo *menuItemRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItemModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrMenuItemUnavailable.WithDetails("menu item is referenced by orders")
		}

		return errors.Wrap(result.Error, "failed to delete menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMenuItemDomain converts a GORM MenuItemModel to a domain MenuItem entity.
func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	item := &entity.MenuItem{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.BasePrice,
		Category:    data.Category,
		Available:   data.IsAvailable,
		Kind:        entity.MenuItemKind(data.ItemType),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if item.Kind == entity.MenuItemKindCoffee {
		item.Coffee = &entity.CoffeeOptions{
			Type:           entity.CoffeeType(valueOrZero(data.CoffeeType)),
			Size:           entity.CoffeeSize(valueOrZero(data.Size)),
			Hot:            valueOrZero(data.IsHot),
			Customizations: []string(data.Customizations),
		}
		if !item.Coffee.Size.IsValid() {
			item.Coffee.Size = entity.CoffeeSizeSmall
		}
	}

	return item
}

// fromMenuItemDomain converts a domain MenuItem entity to a GORM MenuItemModel.
func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	itemM := &model.MenuItemModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		BasePrice:   data.Price,
		Category:    data.Category,
		ItemType:    string(data.Kind),
		IsAvailable: data.Available,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if itemM.ItemType == "" {
		itemM.ItemType = string(entity.MenuItemKindPlain)
	}

	if data.IsCoffee() {
		coffeeType := string(data.Coffee.Type)
		size := string(data.Coffee.Size)
		hot := data.Coffee.Hot
		itemM.CoffeeType = &coffeeType
		itemM.Size = &size
		itemM.IsHot = &hot
		itemM.Customizations = datatypes.JSONSlice[string](data.Customizations())
	}

	return itemM
}
