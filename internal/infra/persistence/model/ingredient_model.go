package model

import (
	"time"

	"gorm.io/datatypes"
)

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
type IngredientModel struct {
	ID             int64           `gorm:"column:ingredient_id;primaryKey;autoIncrement"`
	Name           string          `gorm:"type:varchar(100);not null;index"`
	Unit           string          `gorm:"type:varchar(20);not null"`
	CurrentStock   float64         `gorm:"type:decimal(10,3);not null"`
	MinimumStock   float64         `gorm:"type:decimal(10,3);not null"`
	MaximumStock   float64         `gorm:"type:decimal(10,3);not null"`
	CostPerUnit    float64         `gorm:"type:decimal(10,2);not null"`
	ExpirationDate *datatypes.Date `gorm:"index"`
	Supplier       string          `gorm:"type:varchar(100);index"`
	IsActive       bool            `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}
