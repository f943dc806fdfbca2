package repository

import "context"

// TransactionManager runs use-case work inside one database transaction so the use case layer
// stays independent of the ORM.
type TransactionManager interface {
	// Execute runs fn within a transaction. An error or panic from fn rolls back, otherwise it commits.
	// Every repository taken from the factory shares the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewMenuItemRepository() MenuItemRepository
	NewOrderRepository() OrderRepository
	NewPaymentRepository() PaymentRepository
	NewTableRepository() TableRepository
	NewIngredientRepository() IngredientRepository
	NewCustomerRepository() CustomerRepository
}
