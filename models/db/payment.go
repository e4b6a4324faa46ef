package dbmodels

import (
	"carelink-backend/models"
)

// Payment is the payout stub created when a timesheet is submitted.
// Actual payout processing happens downstream.
type Payment struct {
	BaseModel
	UserID      string `gorm:"index;type:varchar(64)"`
	ShiftID     string `gorm:"index"`
	Amount      float64              `gorm:"type:numeric(10,2)"`
	Status      models.PaymentStatus `gorm:"type:varchar(20)"`
	Type        models.PaymentType   `gorm:"type:varchar(30)"`
	Description string               `gorm:"type:text"`
}
