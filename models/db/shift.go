package dbmodels

import (
	"time"

	"carelink-backend/models"
)

type Shift struct {
	BaseModel
	HomeID      string `gorm:"index"`
	Home        Home
	CaregiverID *string `gorm:"index"`
	Caregiver   *CaregiverProfile
	StartTime   time.Time `gorm:"index"`
	EndTime     time.Time
	HourlyRate  float64            `gorm:"type:numeric(10,2)"`
	Status      models.ShiftStatus `gorm:"type:varchar(20);index"`
	Notes       string             `gorm:"type:text"`
}

// IsAssignedTo reports whether the shift is held by the given caregiver.
// Pure check over the loaded row, safe to call inside a transaction.
func (r Shift) IsAssignedTo(caregiverID string) bool {
	return r.CaregiverID != nil && *r.CaregiverID == caregiverID
}

// IsOwnedByOperator walks the preloaded home chain.
func (r Shift) IsOwnedByOperator(operatorID string) bool {
	return r.Home.OperatorID == operatorID
}
