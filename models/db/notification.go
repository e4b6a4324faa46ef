package dbmodels

import (
	"carelink-backend/models"
)

type Notification struct {
	BaseModel
	UserID  string                  `gorm:"index;type:varchar(64)"`
	Type    models.NotificationType `gorm:"type:varchar(20)"`
	Title   string                  `gorm:"type:varchar(255)"`
	Message string                  `gorm:"type:text"`
	ShiftID string
	IsRead  bool
}
