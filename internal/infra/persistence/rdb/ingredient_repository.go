package rdb

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{
		db: db,
	}
}

// Create persists a new ingredient.
func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidIngredient.WrapMessage("missing required ingredient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredient")
	}

	ingredient.ID = ingredientM.ID
	ingredient.CreatedAt = ingredientM.CreatedAt
	ingredient.UpdatedAt = ingredientM.UpdatedAt

	return nil
}

// FindByID retrieves an ingredient by its ID.
func (repo *ingredientRepository) FindByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an ingredient and locks its row for a stock change.
func (repo *ingredientRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Ingredient, error) {
	return repo.findByID(forUpdate(repo.db.WithContext(ctx)), id)
}

func (repo *ingredientRepository) findByID(db *gorm.DB, id int64) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel

	if err := db.Where("ingredient_id = ?", id).First(&ingredientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by ID")
	}

	return toIngredientDomain(&ingredientM), nil
}

// List retrieves ingredients matching filter, ordered by name.
func (repo *ingredientRepository) List(ctx context.Context, filter repository.IngredientFilter) ([]*entity.Ingredient, error) {
	query := repo.db.WithContext(ctx).Model(&model.IngredientModel{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Supplier != "" {
		query = query.Where("supplier = ?", filter.Supplier)
	}
	if filter.NameQuery != "" {
		query = query.Where("LOWER(name) LIKE ?", likePattern(filter.NameQuery))
	}
	if filter.LowStock {
		query = query.Where("current_stock <= minimum_stock")
	}
	if filter.OutOfStock {
		query = query.Where("current_stock <= 0")
	}
	if filter.ExpiringBefore != nil {
		query = query.Where("expiration_date IS NOT NULL AND expiration_date <= ?", datatypes.Date(*filter.ExpiringBefore))
	}

	var ingredientModels []*model.IngredientModel
	if err := query.Order("name ASC").Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

// Suppliers returns the distinct non-empty suppliers in alphabetical order.
func (repo *ingredientRepository) Suppliers(ctx context.Context) ([]string, error) {
	var suppliers []string

	if err := repo.db.WithContext(ctx).
		Model(&model.IngredientModel{}).
		Where("supplier <> ''").
		Distinct("supplier").
		Order("supplier ASC").
		Pluck("supplier", &suppliers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

// Update overwrites every mutable column of the ingredient.
func (repo *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	result := repo.db.WithContext(ctx).
		Model(&model.IngredientModel{}).
		Where("ingredient_id = ?", ingredient.ID).
		Select("*").
		Omit("ingredient_id", "created_at").
		Updates(ingredientM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ingredient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// Delete removes an ingredient.
func (repo *ingredientRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("ingredient_id = ?", id).
		Delete(&model.IngredientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete ingredient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toIngredientDomain converts a GORM IngredientModel to a domain Ingredient entity.
func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	ingredient := &entity.Ingredient{
		ID:           data.ID,
		Name:         data.Name,
		Unit:         entity.Unit(data.Unit),
		CurrentStock: data.CurrentStock,
		MinimumStock: data.MinimumStock,
		MaximumStock: data.MaximumStock,
		CostPerUnit:  data.CostPerUnit,
		Supplier:     data.Supplier,
		Active:       data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.ExpirationDate != nil {
		expires := time.Time(*data.ExpirationDate)
		ingredient.ExpirationDate = &expires
	}

	return ingredient
}

// fromIngredientDomain converts a domain Ingredient entity to a GORM IngredientModel.
func fromIngredientDomain(data *entity.Ingredient) *model.IngredientModel {
	if data == nil {
		return nil
	}

	ingredientM := &model.IngredientModel{
		ID:           data.ID,
		Name:         data.Name,
		Unit:         string(data.Unit),
		CurrentStock: data.CurrentStock,
		MinimumStock: data.MinimumStock,
		MaximumStock: data.MaximumStock,
		CostPerUnit:  data.CostPerUnit,
		Supplier:     data.Supplier,
		IsActive:     data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.ExpirationDate != nil {
		expires := datatypes.Date(*data.ExpirationDate)
		ingredientM.ExpirationDate = &expires
	}

	return ingredientM
}
