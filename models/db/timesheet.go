package dbmodels

import (
	"time"

	"carelink-backend/models"
)

type Timesheet struct {
	BaseModel
	ShiftID      string `gorm:"uniqueIndex"`
	Shift        Shift
	CaregiverID  string `gorm:"index"`
	StartTime    time.Time
	EndTime      *time.Time
	BreakMinutes int
	Notes        string                 `gorm:"type:text"`
	Status       models.TimesheetStatus `gorm:"type:varchar(20);index"`
	ApprovedByID *string                `gorm:"type:varchar(64)"`
	ApprovedAt   *time.Time
}

func (r Timesheet) IsOwnedBy(caregiverID string) bool {
	return r.CaregiverID == caregiverID
}

// WorkedHours is the clocked span minus break, in hours.
// Zero until clock-out.
func (r Timesheet) WorkedHours() float64 {
	if r.EndTime == nil {
		return 0
	}
	worked := r.EndTime.Sub(r.StartTime) - time.Duration(r.BreakMinutes)*time.Minute
	if worked < 0 {
		return 0
	}
	return worked.Hours()
}
