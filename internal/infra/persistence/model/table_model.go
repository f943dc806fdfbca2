package model

import "time"

// DiningTableModel is the GORM-specific struct for the 'dining_tables' table.
// The table number is chosen by staff, not generated.
type DiningTableModel struct {
	TableNumber       int    `gorm:"primaryKey;autoIncrement:false"`
	Capacity          int    `gorm:"not null;index"`
	Status            string `gorm:"type:varchar(20);not null;index"`
	CurrentCustomerID *int64
	OccupiedSince     *time.Time
	ReservedUntil     *time.Time
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiningTableModel) TableName() string {
	return "dining_tables"
}
