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

const defaultTopLoyaltyLimit = 10

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
	now          func() time.Time
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer creates an account with no points. Emails are unique.
func (srv *customerService) RegisterCustomer(ctx context.Context, input usecase.RegisterCustomerInput) (*entity.Customer, error) {
	customer, ok := entity.NewCustomer(input.Name, input.Email, input.Phone, srv.now())
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidCustomer)
	}

	exists, err := srv.customerRepo.EmailExists(ctx, customer.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, errors.WithStack(domainerrors.ErrCustomerAlreadyExists)
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		srv.log(ctx).Warn("Failed to register customer", slog.String("email", customer.Email), slog.Any("error", err))

		return nil, mapCustomerError(err)
	}

	srv.log(ctx).Info("Customer registered", slog.Int64("customerID", customer.ID), slog.String("email", customer.Email))

	return customer, nil
}

// GetCustomer returns one customer.
func (srv *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	return customer, nil
}

// FindByEmail looks a customer up by email, ignoring case.
func (srv *customerService) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	}

	customer, err := srv.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	return customer, nil
}

// FindByPhone looks a customer up by phone number.
func (srv *customerService) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "phone is required")
	}

	customer, err := srv.customerRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	return customer, nil
}

// SearchCustomers matches name, email or phone.
func (srv *customerService) SearchCustomers(ctx context.Context, query string) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	return customers, nil
}

// UpdateCustomer applies the non-nil fields of input. A changed email must stay unique.
func (srv *customerService) UpdateCustomer(ctx context.Context, id int64, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	if input.Name != nil && !customer.SetName(*input.Name) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCustomer, "name")
	}
	if input.Phone != nil && !customer.SetPhone(*input.Phone) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCustomer, "phone")
	}
	if input.Email != nil && !strings.EqualFold(strings.TrimSpace(*input.Email), customer.Email) {
		if !customer.SetEmail(*input.Email) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCustomer, "email")
		}

		exists, err := srv.customerRepo.EmailExists(ctx, customer.Email)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check email")
		}
		if exists {
			return nil, errors.WithStack(domainerrors.ErrCustomerAlreadyExists)
		}
	}
	customer.UpdatedAt = srv.now()

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		return nil, mapCustomerError(err)
	}

	return customer, nil
}

// DeleteCustomer removes an account without orders.
func (srv *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		return mapCustomerError(err)
	}

	srv.log(ctx).Info("Customer deleted", slog.Int64("customerID", id))

	return nil
}

// OrderHistory returns the customer with their orders, newest first, and the totals derived from them.
func (srv *customerService) OrderHistory(ctx context.Context, id int64) (*usecase.CustomerHistory, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{CustomerID: &id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}
	customer.Orders = orders

	return &usecase.CustomerHistory{
		Customer:    customer,
		Orders:      orders,
		TotalOrders: customer.TotalOrders(),
		TotalSpent:  customer.TotalSpent(),
	}, nil
}

// AddLoyaltyPoints credits points to the balance.
func (srv *customerService) AddLoyaltyPoints(ctx context.Context, id int64, points float64) (*entity.Customer, error) {
	if points <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidLoyaltyPoints)
	}

	return srv.changeLoyalty(ctx, id, func(customer *entity.Customer) error {
		customer.AddLoyaltyPoints(points)

		return nil
	})
}

// RedeemLoyaltyPoints debits points. The balance is left unchanged when it does not cover them.
func (srv *customerService) RedeemLoyaltyPoints(ctx context.Context, id int64, points float64) (*entity.Customer, error) {
	if points <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidLoyaltyPoints)
	}

	return srv.changeLoyalty(ctx, id, func(customer *entity.Customer) error {
		if !customer.RedeemLoyaltyPoints(points) {
			return errors.Wrapf(domainerrors.ErrInsufficientLoyaltyPoints, "balance is %.2f", customer.LoyaltyPoints)
		}

		return nil
	})
}

// changeLoyalty locks the customer row, applies change and saves the new balance.
func (srv *customerService) changeLoyalty(ctx context.Context, id int64, change func(customer *entity.Customer) error) (*entity.Customer, error) {
	var changed *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		customer, err := customerRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapCustomerError(err)
		}

		if err := change(customer); err != nil {
			return err
		}

		if err := customerRepo.UpdateLoyaltyPoints(ctx, id, customer.LoyaltyPoints); err != nil {
			return mapCustomerError(err)
		}
		changed = customer

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change loyalty points", slog.Int64("customerID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to change loyalty points")
	}

	srv.log(ctx).Info("Loyalty points changed", slog.Int64("customerID", id), slog.Float64("balance", changed.LoyaltyPoints))

	return changed, nil
}

// TopLoyaltyCustomers lists the customers with the largest balances. A non-positive limit lists ten.
func (srv *customerService) TopLoyaltyCustomers(ctx context.Context, limit int) ([]*entity.Customer, error) {
	if limit <= 0 {
		limit = defaultTopLoyaltyLimit
	}

	customers, err := srv.customerRepo.TopByLoyalty(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top loyalty customers")
	}

	return customers, nil
}

// Stats summarizes loyalty balances.
func (srv *customerService) Stats(ctx context.Context) (*entity.CustomerStats, error) {
	stats, err := srv.customerRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute customer stats")
	}

	return stats, nil
}

func mapCustomerError(err error) error {
	switch {
	case errors.Is(err, repository.ErrCustomerNotFound):
		return errors.WithStack(domainerrors.ErrCustomerNotFound)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.WithStack(domainerrors.ErrCustomerAlreadyExists)
	}

	return errors.Wrap(err, "customer repository")
}
