// Package model holds the GORM table definitions.
package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&MenuItemModel{},
		&CustomerModel{},
		&DiningTableModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PaymentModel{},
		&IngredientModel{},
	}
}
