package models

type UserRole string

const (
	UserRoleCaregiver UserRole = "CAREGIVER"
	UserRoleOperator  UserRole = "OPERATOR"
	UserRoleAdmin     UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleCaregiver: "Caregiver",
	UserRoleOperator:  "Operator",
	UserRoleAdmin:     "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsCaregiver() bool {
	return r == UserRoleCaregiver
}

func (r UserRole) IsOperator() bool {
	return r == UserRoleOperator
}
