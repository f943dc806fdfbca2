package model

import (
	"time"

	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                  int64            `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID          int64            `gorm:"not null;index"`
	Status              string           `gorm:"type:varchar(20);not null;index"`
	ServiceType         string           `gorm:"type:varchar(20);not null"`
	TableNumber         *int             `gorm:"index"`
	Subtotal            float64          `gorm:"type:decimal(10,2);not null"`
	Tax                 float64          `gorm:"type:decimal(10,2);not null"`
	Discount            float64          `gorm:"type:decimal(10,2);not null"`
	TotalAmount         float64          `gorm:"type:decimal(10,2);not null"`
	SpecialInstructions string           `gorm:"type:text"`
	OrderTime           time.Time        `gorm:"not null;index"`
	CompletionTime      *time.Time       `gorm:"column:completion_time"`
	Items               []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Prices are snapshots taken when the line was saved; coffee options describe the configured drink.
type OrderItemModel struct {
	ID             int64                       `gorm:"column:order_item_id;primaryKey;autoIncrement"`
	OrderID        int64                       `gorm:"not null;index"`
	MenuItemID     int64                       `gorm:"not null;index"`
	MenuItem       MenuItemModel               `gorm:"foreignKey:MenuItemID;references:ID"`
	Quantity       int                         `gorm:"not null"`
	UnitPrice      float64                     `gorm:"type:decimal(10,2);not null"`
	TotalPrice     float64                     `gorm:"type:decimal(10,2);not null"`
	Customizations datatypes.JSONSlice[string] `gorm:"column:customizations"`
	Size           *string                     `gorm:"type:varchar(20)"`
	IsHot          *bool                       `gorm:"column:is_hot"`
	Notes          string                      `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
