package rdb

import (
	"context"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tableRepository implements the repository.TableRepository interface.
type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository is the constructor for tableRepository.
func NewTableRepository(db *gorm.DB) repository.TableRepository {
	return &tableRepository{
		db: db,
	}
}

// Create persists a new table under its staff-assigned number.
func (repo *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	tableM := fromTableDomain(table)

	if err := repo.db.WithContext(ctx).Create(tableM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTableAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidTable.WrapMessage("missing required table information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create table")
	}

	table.UpdatedAt = tableM.UpdatedAt

	return nil
}

// FindByNumber retrieves a table by its number.
func (repo *tableRepository) FindByNumber(ctx context.Context, number int) (*entity.Table, error) {
	return repo.findByNumber(repo.db.WithContext(ctx), number)
}

// FindByNumberForUpdate retrieves a table and locks its row.
func (repo *tableRepository) FindByNumberForUpdate(ctx context.Context, number int) (*entity.Table, error) {
	return repo.findByNumber(forUpdate(repo.db.WithContext(ctx)), number)
}

func (repo *tableRepository) findByNumber(db *gorm.DB, number int) (*entity.Table, error) {
	var tableM model.DiningTableModel

	if err := db.Where("table_number = ?", number).First(&tableM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find table by number")
	}

	return toTableDomain(&tableM), nil
}

// List retrieves tables ordered by capacity, then number.
func (repo *tableRepository) List(ctx context.Context, filter repository.TableFilter) ([]*entity.Table, error) {
	query := repo.db.WithContext(ctx).Model(&model.DiningTableModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.MinCapacity > 0 {
		query = query.Where("capacity >= ?", filter.MinCapacity)
	}

	var tableModels []*model.DiningTableModel
	if err := query.Order("capacity ASC, table_number ASC").Find(&tableModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	tables := make([]*entity.Table, 0, len(tableModels))
	for _, tableM := range tableModels {
		tables = append(tables, toTableDomain(tableM))
	}

	return tables, nil
}

// Update overwrites the state of a table.
func (repo *tableRepository) Update(ctx context.Context, table *entity.Table) error {
	tableM := fromTableDomain(table)

	result := repo.db.WithContext(ctx).
		Model(&model.DiningTableModel{}).
		Where("table_number = ?", table.Number).
		Select("*").
		Omit("table_number", "created_at").
		Updates(tableM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update table")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTableNotFound
	}
	table.UpdatedAt = tableM.UpdatedAt

	return nil
}

// Delete removes a table.
func (repo *tableRepository) Delete(ctx context.Context, number int) error {
	result := repo.db.WithContext(ctx).
		Where("table_number = ?", number).
		Delete(&model.DiningTableModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete table")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTableNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTableDomain converts a GORM DiningTableModel to a domain Table entity.
func toTableDomain(data *model.DiningTableModel) *entity.Table {
	if data == nil {
		return nil
	}

	return &entity.Table{
		Number:        data.TableNumber,
		Capacity:      data.Capacity,
		Status:        entity.TableStatus(data.Status),
		CustomerID:    valueOrZero(data.CurrentCustomerID),
		OccupiedSince: data.OccupiedSince,
		ReservedUntil: data.ReservedUntil,
		Notes:         data.Notes,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromTableDomain converts a domain Table entity to a GORM DiningTableModel.
func fromTableDomain(data *entity.Table) *model.DiningTableModel {
	if data == nil {
		return nil
	}

	return &model.DiningTableModel{
		TableNumber:       data.Number,
		Capacity:          data.Capacity,
		Status:            string(data.Status),
		CurrentCustomerID: ptrIfNotZero(data.CustomerID),
		OccupiedSince:     data.OccupiedSince,
		ReservedUntil:     data.ReservedUntil,
		Notes:             data.Notes,
		UpdatedAt:         data.UpdatedAt,
	}
}
