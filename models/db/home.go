package dbmodels

import (
	"github.com/lib/pq"
)

type Home struct {
	BaseModel
	OperatorID string `gorm:"index"`
	Operator   OperatorProfile
	Name       string         `gorm:"type:varchar(255)"`
	Address    string         `gorm:"type:varchar(500)"`
	CareTypes  pq.StringArray `gorm:"type:text[]"`
}
