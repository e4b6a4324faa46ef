package shiftstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"carelink-backend/models"
	shiftapimodels "carelink-backend/models/api/shift"
	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Shift, err error)
	ListOpen(from time.Time, filter shiftapimodels.ShiftFilter) (list []dbmodels.Shift, err error)
	ListOpenCount(from time.Time, filter shiftapimodels.ShiftFilter) (int64, error)
	ListByCaregiver(caregiverID string, page, limit int) (list []dbmodels.Shift, err error)
	ListByCaregiverCount(caregiverID string) (int64, error)
	ClaimOpen(id, caregiverID string) (claimed bool, err error)
	UpdateStatusIf(id string, current, next models.ShiftStatus) (updated bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Shift, error) {
	rec := dbmodels.Shift{}
	err := i.db.
		Where("id = ?", id).
		Preload("Home").
		Preload("Home.Operator").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) openQuery(from time.Time, filter shiftapimodels.ShiftFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Shift{}).
		Where("status = ?", models.ShiftStatusOpen).
		Where("start_time >= ?", from)
	if filter.HomeID != "" {
		tx = tx.Where("home_id = ?", filter.HomeID)
	}
	if filter.StartFrom != nil {
		tx = tx.Where("start_time >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		tx = tx.Where("start_time <= ?", *filter.StartTo)
	}
	return tx
}

func (i impl) ListOpen(from time.Time, filter shiftapimodels.ShiftFilter) (list []dbmodels.Shift, err error) {
	list = []dbmodels.Shift{}
	page, limit := filter.GetPage()
	err = i.openQuery(from, filter).
		Preload("Home").
		Order("start_time asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListOpenCount(from time.Time, filter shiftapimodels.ShiftFilter) (int64, error) {
	var count int64
	err := i.openQuery(from, filter).Count(&count).Error
	return count, err
}

func (i impl) ListByCaregiver(caregiverID string, page, limit int) (list []dbmodels.Shift, err error) {
	list = []dbmodels.Shift{}
	err = i.db.Model(&dbmodels.Shift{}).
		Where("caregiver_id = ?", caregiverID).
		Preload("Home").
		Order("start_time desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCaregiverCount(caregiverID string) (int64, error) {
	var count int64
	err := i.db.Model(&dbmodels.Shift{}).
		Where("caregiver_id = ?", caregiverID).
		Count(&count).
		Error
	return count, err
}

// ClaimOpen assigns the shift to the caregiver only if it is still OPEN.
// The status check runs inside the UPDATE itself, so of two concurrent
// claims exactly one sees claimed=true.
func (i impl) ClaimOpen(id, caregiverID string) (claimed bool, err error) {
	tx := i.db.Model(&dbmodels.Shift{}).
		Where("id = ?", id).
		Where("status = ?", models.ShiftStatusOpen).
		Updates(map[string]interface{}{
			"status":       models.ShiftStatusAssigned,
			"caregiver_id": caregiverID,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// UpdateStatusIf is the conditional transition primitive for the shift
// state machine. updated=false means the guard status did not match.
func (i impl) UpdateStatusIf(id string, current, next models.ShiftStatus) (updated bool, err error) {
	tx := i.db.Model(&dbmodels.Shift{}).
		Where("id = ?", id).
		Where("status = ?", current).
		Update("status", next)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
