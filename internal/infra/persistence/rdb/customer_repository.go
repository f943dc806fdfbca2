package rdb

import (
	"context"
	"strings"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create registers a customer. Emails are unique.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidCustomer.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a customer by ID.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("customer_id = ?", id))
}

// FindByIDForUpdate retrieves a customer and locks the row for a loyalty change.
func (repo *customerRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Customer, error) {
	return repo.findOne(forUpdate(repo.db.WithContext(ctx)).Where("customer_id = ?", id))
}

// FindByEmail retrieves a customer by email, ignoring case.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))))
}

// FindByPhone retrieves a customer by phone number.
func (repo *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("phone_number = ?", strings.TrimSpace(phone)))
}

func (repo *customerRepository) findOne(query *gorm.DB) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := query.First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

// Search matches name, email or phone; an empty query lists everyone by name.
func (repo *customerRepository) Search(ctx context.Context, query string) ([]*entity.Customer, error) {
	db := repo.db.WithContext(ctx).Model(&model.CustomerModel{})

	if strings.TrimSpace(query) != "" {
		pattern := likePattern(query)
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone_number LIKE ?", pattern, pattern, pattern)
	}

	return repo.list(db.Order("name ASC"))
}

// TopByLoyalty returns the customers with the largest balances.
func (repo *customerRepository) TopByLoyalty(ctx context.Context, limit int) ([]*entity.Customer, error) {
	return repo.list(repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Order("loyalty_points DESC, customer_id ASC").
		Limit(limit))
}

func (repo *customerRepository) list(query *gorm.DB) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Update overwrites the profile and balance of a customer.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", customer.ID).
		Select("*").
		Omit("customer_id", "created_at", "registration_date").
		Updates(customerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// UpdateLoyaltyPoints stores a new balance.
func (repo *customerRepository) UpdateLoyaltyPoints(ctx context.Context, id int64, points float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", id).
		Update("loyalty_points", points)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update loyalty points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer. Customers with orders cannot be deleted.
func (repo *customerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("customer_id = ?", id).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidCustomer.WithDetails("customer has orders")
		}

		return errors.Wrap(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// EmailExists reports whether an email is already registered, ignoring case.
func (repo *customerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email")
	}

	return count > 0, nil
}

// Stats aggregates loyalty balances over all customers.
func (repo *customerRepository) Stats(ctx context.Context) (*entity.CustomerStats, error) {
	var stats entity.CustomerStats

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Select("COUNT(*) AS total_customers, " +
			"COALESCE(SUM(loyalty_points), 0) AS total_loyalty_points, " +
			"COALESCE(AVG(loyalty_points), 0) AS average_loyalty_points, " +
			"COALESCE(MAX(loyalty_points), 0) AS max_loyalty_points").
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute customer statistics")
	}

	return &stats, nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.PhoneNumber,
		LoyaltyPoints: data.LoyaltyPoints,
		RegisteredAt:  data.RegistrationDate,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:               data.ID,
		Name:             data.Name,
		Email:            data.Email,
		PhoneNumber:      data.Phone,
		LoyaltyPoints:    data.LoyaltyPoints,
		RegistrationDate: data.RegisteredAt,
		CreatedAt:        data.RegisteredAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
