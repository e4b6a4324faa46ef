package hirestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Hire) (id string, err error)
	GetByShiftID(shiftID string) (rec *dbmodels.Hire, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Hire) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByShiftID(shiftID string) (*dbmodels.Hire, error) {
	rec := dbmodels.Hire{}
	err := i.db.
		Where("shift_id = ?", shiftID).
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
