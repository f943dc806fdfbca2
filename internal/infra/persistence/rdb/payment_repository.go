package rdb

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a payment attempt.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID

	return nil
}

// FindByID retrieves a payment by its ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("payment_id = ?", id))
}

// FindByIDForUpdate retrieves a payment and locks its row.
func (repo *paymentRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Payment, error) {
	return repo.findOne(forUpdate(repo.db.WithContext(ctx)).Where("payment_id = ?", id))
}

// FindByReference retrieves the most recent payment carrying the transaction reference.
func (repo *paymentRepository) FindByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("transaction_reference = ?", reference).
		Order("payment_time DESC"))
}

func (repo *paymentRepository) findOne(query *gorm.DB) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := query.First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// List retrieves payments matching filter, newest first.
func (repo *paymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	query := repo.db.WithContext(ctx).Model(&model.PaymentModel{})

	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Method != nil {
		query = query.Where("payment_method = ?", string(*filter.Method))
	}
	query = betweenTimes(query, "payment_time", filter.From, filter.To)

	var paymentModels []*model.PaymentModel
	if err := query.Order("payment_time DESC").Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// UpdateStatus saves the outcome fields of a payment.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, payment *entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", payment.ID).
		Updates(map[string]any{
			"status":                string(payment.Status),
			"transaction_reference": payment.TransactionReference,
			"failure_reason":        payment.FailureReason,
			"processed_at":          payment.ProcessedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// HasCompletedPayment reports whether the order already has a COMPLETED payment.
func (repo *paymentRepository) HasCompletedPayment(ctx context.Context, orderID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("order_id = ? AND status = ?", orderID, string(entity.PaymentStatusCompleted)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check completed payments")
	}

	return count > 0, nil
}

// TotalPaid sums the COMPLETED payments of an order.
func (repo *paymentRepository) TotalPaid(ctx context.Context, orderID int64) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("order_id = ? AND status = ?", orderID, string(entity.PaymentStatusCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum payments")
	}

	return total, nil
}

type paymentGroupRow struct {
	Status        string
	PaymentMethod string
	Count         int64
	Amount        float64
}

// Stats counts payments per status and method in the period. TotalAmount covers completed payments.
func (repo *paymentRepository) Stats(ctx context.Context, from, to *time.Time) (*entity.PaymentStats, error) {
	query := betweenTimes(repo.db.WithContext(ctx).Model(&model.PaymentModel{}), "payment_time", from, to)

	var rows []paymentGroupRow
	if err := query.
		Select("status, payment_method, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Group("status, payment_method").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute payment statistics")
	}

	stats := &entity.PaymentStats{ByMethod: make(map[entity.PaymentMethod]int64)}
	for _, row := range rows {
		stats.TotalPayments += row.Count
		stats.ByMethod[entity.PaymentMethod(row.PaymentMethod)] += row.Count

		switch entity.PaymentStatus(row.Status) {
		case entity.PaymentStatusCompleted:
			stats.Completed += row.Count
			stats.TotalAmount += row.Amount
		case entity.PaymentStatusFailed:
			stats.Failed += row.Count
		case entity.PaymentStatusPending, entity.PaymentStatusProcessing:
			stats.Pending += row.Count
		case entity.PaymentStatusRefunded:
			stats.Refunded += row.Count
		}
	}

	return stats, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:                   data.ID,
		OrderID:              data.OrderID,
		Method:               entity.PaymentMethod(data.PaymentMethod),
		Status:               entity.PaymentStatus(data.Status),
		Amount:               data.Amount,
		AmountPaid:           data.AmountPaid,
		ChangeGiven:          data.ChangeGiven,
		PointsUsed:           data.PointsUsed,
		TransactionReference: data.TransactionReference,
		CardLastFour:         data.CardLastFourDigits,
		FailureReason:        data.FailureReason,
		PaymentDate:          data.PaymentTime,
		ProcessedAt:          data.ProcessedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:                   data.ID,
		OrderID:              data.OrderID,
		PaymentMethod:        string(data.Method),
		Status:               string(data.Status),
		Amount:               data.Amount,
		AmountPaid:           data.AmountPaid,
		ChangeGiven:          data.ChangeGiven,
		PointsUsed:           data.PointsUsed,
		TransactionReference: data.TransactionReference,
		CardLastFourDigits:   data.CardLastFour,
		FailureReason:        data.FailureReason,
		PaymentTime:          data.PaymentDate,
		ProcessedAt:          data.ProcessedAt,
	}
}
