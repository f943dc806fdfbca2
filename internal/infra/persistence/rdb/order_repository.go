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
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func preloadLines(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_item_id ASC")
		}).
		Preload("Items.MenuItem")
}

// Create inserts the order header followed by its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid customer or table reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.OrderTime
	order.UpdatedAt = orderM.UpdatedAt

	return repo.insertLines(db, order)
}

func (repo *orderRepository) insertLines(db *gorm.DB, order *entity.Order) error {
	if len(order.Items) == 0 {
		return nil
	}

	lines := fromOrderItemsDomain(order.ID, order.Items)
	if err := db.Omit(clause.Associations).Create(&lines).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid menu item reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i := range lines {
		order.Items[i].ID = lines[i].ID
	}

	return nil
}

// FindByID retrieves an order with its lines and their menu items.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an order and locks its header row.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Order, error) {
	return repo.findByID(forUpdate(repo.db.WithContext(ctx)), id)
}

func (repo *orderRepository) findByID(db *gorm.DB, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := preloadLines(db).
		Where("order_id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves orders matching filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := preloadLines(repo.db.WithContext(ctx))

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.TableNumber != nil {
		query = query.Where("table_number = ?", *filter.TableNumber)
	}
	query = betweenTimes(query, "order_time", filter.From, filter.To)

	var orderModels []*model.OrderModel
	if err := query.Order("order_time DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update saves the header and replaces every line. Run it inside a transaction.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.OrderModel{}).
		Where("order_id = ?", order.ID).
		Select("*").
		Omit("order_id", "created_at", "order_time", clause.Associations).
		Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}
	order.UpdatedAt = orderM.UpdatedAt

	if err := db.Where("order_id = ?", order.ID).Delete(&model.OrderItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace order items")
	}

	return repo.insertLines(db, order)
}

// UpdateStatus saves the status and the completion time only.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_id = ?", order.ID).
		Updates(map[string]any{
			"status":          string(order.Status),
			"completion_time": order.CompletedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order and its lines.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id).Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	result := db.Where("order_id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

type orderStatusRow struct {
	Status  string
	Count   int64
	Revenue float64
}

// Stats counts orders per status in the period. Cancelled orders do not contribute revenue.
func (repo *orderRepository) Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error) {
	query := betweenTimes(repo.db.WithContext(ctx).Model(&model.OrderModel{}), "order_time", from, to)

	var rows []orderStatusRow
	if err := query.
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute order statistics")
	}

	stats := &entity.OrderStats{}
	var billable int64
	for _, row := range rows {
		stats.TotalOrders += row.Count

		switch entity.OrderStatus(row.Status) {
		case entity.OrderStatusPending:
			stats.Pending = row.Count
		case entity.OrderStatusConfirmed:
			stats.Confirmed = row.Count
		case entity.OrderStatusPreparing:
			stats.Preparing = row.Count
		case entity.OrderStatusReady:
			stats.Ready = row.Count
		case entity.OrderStatusCompleted:
			stats.Completed = row.Count
		case entity.OrderStatusCancelled:
			stats.Cancelled = row.Count

			continue
		}

		stats.TotalRevenue += row.Revenue
		billable += row.Count
	}

	if billable > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(billable)
	}

	return stats, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel with preloaded lines to a domain Order.
// Totals come from the stored header, so historical orders keep the prices they were placed at.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		Status:              entity.OrderStatus(data.Status),
		ServiceType:         entity.ServiceType(data.ServiceType),
		TableNumber:         valueOrZero(data.TableNumber),
		Subtotal:            data.Subtotal,
		Tax:                 data.Tax,
		Discount:            data.Discount,
		Total:               data.TotalAmount,
		SpecialInstructions: data.SpecialInstructions,
		CreatedAt:           data.OrderTime,
		CompletedAt:         data.CompletionTime,
		UpdatedAt:           data.UpdatedAt,
	}

	order.Items = make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		order.Items = append(order.Items, toOrderItemDomain(&data.Items[i]))
	}

	return order
}

// toOrderItemDomain rebuilds the configured menu item of a line from the catalog entry and the saved options.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	catalog := toMenuItemDomain(&data.MenuItem)
	if catalog.ID == 0 {
		catalog.ID = data.MenuItemID
	}

	hot := catalog.IsCoffee() && catalog.Coffee.Hot
	if data.IsHot != nil {
		hot = *data.IsHot
	}

	return &entity.OrderItem{
		ID:       data.ID,
		MenuItem: catalog.Configure(entity.CoffeeSize(valueOrZero(data.Size)), hot, data.Customizations),
		Quantity: data.Quantity,
		Notes:    data.Notes,
	}
}

// fromOrderDomain converts the header of a domain Order to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		Status:              string(data.Status),
		ServiceType:         string(data.ServiceType),
		TableNumber:         ptrIfNotZero(data.TableNumber),
		Subtotal:            data.Subtotal,
		Tax:                 data.Tax,
		Discount:            data.Discount,
		TotalAmount:         data.Total,
		SpecialInstructions: data.SpecialInstructions,
		OrderTime:           data.CreatedAt,
		CompletionTime:      data.CompletedAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromOrderItemsDomain converts order lines to new GORM rows, snapshotting their prices.
func fromOrderItemsDomain(orderID int64, items []*entity.OrderItem) []model.OrderItemModel {
	lines := make([]model.OrderItemModel, 0, len(items))
	for _, item := range items {
		line := model.OrderItemModel{
			OrderID:    orderID,
			MenuItemID: item.MenuItem.ID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.LineTotal(),
			Notes:      item.Notes,
		}

		if item.MenuItem.IsCoffee() {
			size := string(item.MenuItem.Coffee.Size)
			hot := item.MenuItem.Coffee.Hot
			line.Size = &size
			line.IsHot = &hot
			line.Customizations = datatypes.JSONSlice[string](item.MenuItem.Customizations())
		}

		lines = append(lines, line)
	}

	return lines
}
