package notificationstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
