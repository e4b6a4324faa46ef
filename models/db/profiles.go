package dbmodels

import "fmt"

type CaregiverProfile struct {
	BaseModel
	UserID       string `gorm:"uniqueIndex;type:varchar(64)"`
	FirstName    string `gorm:"type:varchar(150)"`
	LastName     string `gorm:"type:varchar(150)"`
	ContactEmail string `gorm:"type:varchar(255)"`
}

func (r CaregiverProfile) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

type OperatorProfile struct {
	BaseModel
	UserID       string `gorm:"uniqueIndex;type:varchar(64)"`
	CompanyName  string `gorm:"type:varchar(255)"`
	ContactEmail string `gorm:"type:varchar(255)"`
}
