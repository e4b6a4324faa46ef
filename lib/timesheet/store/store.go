package timesheetstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carelink-backend/models"
	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Timesheet) (id string, err error)
	GetByID(id string) (rec *dbmodels.Timesheet, err error)
	ExistsForShift(shiftID string) (bool, error)
	UpdateIf(id string, current models.TimesheetStatus, updMap map[string]interface{}) (updated bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Timesheet) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Timesheet, error) {
	rec := dbmodels.Timesheet{}
	err := i.db.
		Where("id = ?", id).
		Preload("Shift").
		Preload("Shift.Home").
		Preload("Shift.Home.Operator").
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

func (i impl) ExistsForShift(shiftID string) (bool, error) {
	var count int64
	err := i.db.Model(&dbmodels.Timesheet{}).
		Where("shift_id = ?", shiftID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateIf applies updMap only while the timesheet still holds the guard
// status. updated=false means a concurrent transition got there first.
func (i impl) UpdateIf(id string, current models.TimesheetStatus, updMap map[string]interface{}) (updated bool, err error) {
	tx := i.db.Model(&dbmodels.Timesheet{}).
		Where("id = ?", id).
		Where("status = ?", current).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
