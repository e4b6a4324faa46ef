// Package principal resolves the authenticated user to a role-scoped
// principal. Resolution happens once per request; ownership checks on
// loaded records live on the db models, not here.
package principal

import (
	"carelink-backend/apperrors"
	"carelink-backend/db"
	principalstore "carelink-backend/lib/principal/store"
)

type CaregiverPrincipal struct {
	CaregiverID string
	UserID      string
	FullName    string
}

type OperatorPrincipal struct {
	OperatorID  string
	UserID      string
	CompanyName string
}

type Provider interface {
	ResolveCaregiver(userID string) (CaregiverPrincipal, error)
	ResolveOperator(userID string) (OperatorPrincipal, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: principalstore.NewInstance(db.DB),
	}
}

type impl struct {
	store principalstore.Provider
}

func (i impl) ResolveCaregiver(userID string) (CaregiverPrincipal, error) {
	if userID == "" {
		return CaregiverPrincipal{}, apperrors.Unauthenticated("authentication required")
	}
	rec, err := i.store.CaregiverByUserID(userID)
	if err != nil {
		return CaregiverPrincipal{}, err
	}
	if rec == nil {
		return CaregiverPrincipal{}, apperrors.Forbidden("caller is not registered as a caregiver")
	}
	return CaregiverPrincipal{
		CaregiverID: rec.ID,
		UserID:      userID,
		FullName:    rec.GetFullName(),
	}, nil
}

func (i impl) ResolveOperator(userID string) (OperatorPrincipal, error) {
	if userID == "" {
		return OperatorPrincipal{}, apperrors.Unauthenticated("authentication required")
	}
	rec, err := i.store.OperatorByUserID(userID)
	if err != nil {
		return OperatorPrincipal{}, err
	}
	if rec == nil {
		return OperatorPrincipal{}, apperrors.Forbidden("caller is not registered as an operator")
	}
	return OperatorPrincipal{
		OperatorID:  rec.ID,
		UserID:      userID,
		CompanyName: rec.CompanyName,
	}, nil
}
