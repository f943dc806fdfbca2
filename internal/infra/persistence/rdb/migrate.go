package rdb

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates every table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

type seedCustomer struct {
	name, email, phone string
	points             float64
}

type seedTable struct {
	number, capacity int
}

func seedMenu() []*entity.MenuItem {
	return []*entity.MenuItem{
		entity.NewCoffee("Espresso", "Rich and bold espresso shot", 2.50, entity.CoffeeTypeEspresso, entity.CoffeeSizeSmall, true),
		entity.NewCoffee("Americano", "Espresso with hot water", 3.00, entity.CoffeeTypeAmericano, entity.CoffeeSizeSmall, true),
		entity.NewCoffee("Latte", "Espresso with steamed milk", 4.50, entity.CoffeeTypeLatte, entity.CoffeeSizeSmall, true),
		entity.NewCoffee("Cappuccino", "Espresso with steamed milk and foam", 4.00, entity.CoffeeTypeCappuccino, entity.CoffeeSizeSmall, true),
		entity.NewCoffee("Mocha", "Espresso with chocolate and steamed milk", 5.00, entity.CoffeeTypeMocha, entity.CoffeeSizeSmall, true),
	}
}

var (
	seedCustomers = []seedCustomer{ //nolint:gochecknoglobals
		{"John Doe", "john.doe@email.com", "555-0101", 25.50},
		{"Jane Smith", "jane.smith@email.com", "555-0102", 15.75},
		{"Bob Johnson", "bob.johnson@email.com", "555-0103", 42.25},
	}

	seedTables = []seedTable{ //nolint:gochecknoglobals
		{1, 2}, {2, 4}, {3, 2}, {4, 6}, {5, 4},
	}
)

// Seed inserts the sample menu, customers and tables into an empty database.
// It reports false without writing anything when the catalog already has items.
func Seed(ctx context.Context, tm repository.TransactionManager, now time.Time) (bool, error) {
	seeded := false

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		menuRepo := factory.NewMenuItemRepository()

		count, err := menuRepo.Count(ctx, false)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, item := range seedMenu() {
			if err := menuRepo.Create(ctx, item); err != nil {
				return errors.Wrapf(err, "failed to seed menu item %s", item.Name)
			}
		}

		customerRepo := factory.NewCustomerRepository()
		for _, c := range seedCustomers {
			customer, ok := entity.NewCustomer(c.name, c.email, c.phone, now)
			if !ok {
				return errors.Errorf("invalid seed customer %s", c.email)
			}
			customer.LoyaltyPoints = c.points

			if err := customerRepo.Create(ctx, customer); err != nil {
				return errors.Wrapf(err, "failed to seed customer %s", c.email)
			}
		}

		tableRepo := factory.NewTableRepository()
		for _, t := range seedTables {
			table, _ := entity.NewTable(t.number, t.capacity)
			if err := tableRepo.Create(ctx, table); err != nil {
				return errors.Wrapf(err, "failed to seed table %d", t.number)
			}
		}

		seeded = true

		return nil
	})

	return seeded, err
}
