package timesheetapimodels

import (
	"time"

	"carelink-backend/apperrors"
	"carelink-backend/models"
	dbmodels "carelink-backend/models/db"
)

type ClockOutData struct {
	BreakMinutes int    `json:"break_minutes"` // unpaid break, minutes
	Notes        string `json:"notes"`
}

func (v ClockOutData) Validate() error {
	if v.BreakMinutes < 0 {
		return apperrors.Validation("break_minutes must not be negative")
	}
	return nil
}

type TimesheetView struct {
	ID           string                 `json:"id"`
	ShiftID      string                 `json:"shift_id"`
	CaregiverID  string                 `json:"caregiver_id"`
	StartTime    time.Time              `json:"start_time"`
	EndTime      *time.Time             `json:"end_time,omitempty"`
	BreakMinutes int                    `json:"break_minutes"`
	Notes        string                 `json:"notes,omitempty"`
	Status       models.TimesheetStatus `json:"status"`
	ApprovedByID string                 `json:"approved_by_id,omitempty"`
	ApprovedAt   *time.Time             `json:"approved_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

func TimesheetConvert(rec dbmodels.Timesheet) TimesheetView {
	result := TimesheetView{
		ID:           rec.ID,
		ShiftID:      rec.ShiftID,
		CaregiverID:  rec.CaregiverID,
		StartTime:    rec.StartTime,
		EndTime:      rec.EndTime,
		BreakMinutes: rec.BreakMinutes,
		Notes:        rec.Notes,
		Status:       rec.Status,
		ApprovedAt:   rec.ApprovedAt,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.ApprovedByID != nil {
		result.ApprovedByID = *rec.ApprovedByID
	}
	return result
}
