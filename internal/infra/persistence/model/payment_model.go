package model

import "time"

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	ID                   int64      `gorm:"column:payment_id;primaryKey;autoIncrement"`
	OrderID              int64      `gorm:"not null;index"`
	PaymentMethod        string     `gorm:"type:varchar(20);not null;index"`
	Status               string     `gorm:"type:varchar(20);not null;index"`
	Amount               float64    `gorm:"type:decimal(10,2);not null"`
	AmountPaid           float64    `gorm:"type:decimal(10,2);not null"`
	ChangeGiven          float64    `gorm:"type:decimal(10,2);not null"`
	PointsUsed           float64    `gorm:"type:decimal(10,2);not null"`
	TransactionReference string     `gorm:"type:varchar(100);index"`
	CardLastFourDigits   string     `gorm:"type:varchar(4)"`
	FailureReason        string     `gorm:"type:text"`
	PaymentTime          time.Time  `gorm:"not null;index"`
	ProcessedAt          *time.Time `gorm:"column:processed_at"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
