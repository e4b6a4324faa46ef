package dbmodels

// Hire is the immutable record of a successful claim. Payment and review
// subsystems look shifts up through it by id.
type Hire struct {
	BaseModel
	ShiftID     string `gorm:"uniqueIndex"`
	CaregiverID string `gorm:"index"`
}
