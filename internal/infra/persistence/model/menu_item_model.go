package model

import (
	"time"

	"gorm.io/datatypes"
)

// MenuItemModel is the GORM-specific struct for the 'menu_items' table.
// Coffee-only columns are NULL for plain items.
type MenuItemModel struct {
	ID             int64                       `gorm:"primaryKey;autoIncrement"`
	Name           string                      `gorm:"type:varchar(100);not null;index"`
	Description    string                      `gorm:"type:text"`
	BasePrice      float64                     `gorm:"type:decimal(10,2);not null"`
	Category       string                      `gorm:"type:varchar(50);not null;index"`
	ItemType       string                      `gorm:"type:varchar(50);not null"`
	CoffeeType     *string                     `gorm:"type:varchar(50)"`
	Size           *string                     `gorm:"type:varchar(20)"`
	IsHot          *bool                       `gorm:"column:is_hot"`
	Customizations datatypes.JSONSlice[string] `gorm:"column:customizations"`
	IsAvailable    bool                        `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
