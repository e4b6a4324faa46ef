package shiftapimodels

import (
	"time"

	"carelink-backend/models"
	apimodels "carelink-backend/models/api"
	dbmodels "carelink-backend/models/db"
)

type ShiftFilter struct {
	apimodels.Pagination
	HomeID    string     `json:"home_id,omitempty"`    // limit to one home
	StartFrom *time.Time `json:"start_from,omitempty"` // earliest start time
	StartTo   *time.Time `json:"start_to,omitempty"`   // latest start time
}

type ShiftView struct {
	ID          string             `json:"id"`
	HomeID      string             `json:"home_id"`
	HomeName    string             `json:"home_name,omitempty"`
	CaregiverID string             `json:"caregiver_id,omitempty"`
	StartTime   time.Time          `json:"start_time"`
	EndTime     time.Time          `json:"end_time"`
	HourlyRate  float64            `json:"hourly_rate"`
	Status      models.ShiftStatus `json:"status"`
	Notes       string             `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func ShiftConvert(rec dbmodels.Shift) ShiftView {
	result := ShiftView{
		ID:         rec.ID,
		HomeID:     rec.HomeID,
		HomeName:   rec.Home.Name,
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
		HourlyRate: rec.HourlyRate,
		Status:     rec.Status,
		Notes:      rec.Notes,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.CaregiverID != nil {
		result.CaregiverID = *rec.CaregiverID
	}
	return result
}

type ClaimView struct {
	Shift  ShiftView `json:"shift"`
	HireID string    `json:"hire_id"`
}
