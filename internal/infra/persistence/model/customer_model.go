package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID               int64     `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name             string    `gorm:"type:varchar(100);not null;index"`
	Email            string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	PhoneNumber      string    `gorm:"type:varchar(20);not null;index"`
	LoyaltyPoints    float64   `gorm:"type:decimal(10,2);not null"`
	RegistrationDate time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
