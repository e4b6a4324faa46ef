package principalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	CaregiverByUserID(userID string) (rec *dbmodels.CaregiverProfile, err error)
	CaregiverByID(id string) (rec *dbmodels.CaregiverProfile, err error)
	OperatorByUserID(userID string) (rec *dbmodels.OperatorProfile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CaregiverByUserID(userID string) (*dbmodels.CaregiverProfile, error) {
	rec := dbmodels.CaregiverProfile{}
	err := i.db.
		Where("user_id = ?", userID).
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

func (i impl) CaregiverByID(id string) (*dbmodels.CaregiverProfile, error) {
	rec := dbmodels.CaregiverProfile{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) OperatorByUserID(userID string) (*dbmodels.OperatorProfile, error) {
	rec := dbmodels.OperatorProfile{}
	err := i.db.
		Where("user_id = ?", userID).
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
