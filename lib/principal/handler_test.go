package principal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"carelink-backend/apperrors"
	dbmodels "carelink-backend/models/db"
)

type stubStore struct {
	caregivers map[string]dbmodels.CaregiverProfile
	operators  map[string]dbmodels.OperatorProfile
}

func (s stubStore) CaregiverByUserID(userID string) (*dbmodels.CaregiverProfile, error) {
	rec, exist := s.caregivers[userID]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (s stubStore) CaregiverByID(id string) (*dbmodels.CaregiverProfile, error) {
	for _, rec := range s.caregivers {
		if rec.ID == id {
			rec := rec
			return &rec, nil
		}
	}
	return nil, nil
}

func (s stubStore) OperatorByUserID(userID string) (*dbmodels.OperatorProfile, error) {
	rec, exist := s.operators[userID]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func newTestResolver() impl {
	caregiver := dbmodels.CaregiverProfile{
		UserID:    "u1",
		FirstName: "Anna",
		LastName:  "Weber",
	}
	caregiver.ID = "cg-1"
	operator := dbmodels.OperatorProfile{
		UserID:      "op-user-1",
		CompanyName: "Sunrise Care GmbH",
	}
	operator.ID = "op-1"
	return impl{store: stubStore{
		caregivers: map[string]dbmodels.CaregiverProfile{"u1": caregiver},
		operators:  map[string]dbmodels.OperatorProfile{"op-user-1": operator},
	}}
}

func TestResolveCaregiver(t *testing.T) {
	t.Run(`resolves a registered caregiver`, func(t *testing.T) {
		p, err := newTestResolver().ResolveCaregiver("u1")
		require.Nil(t, err)
		require.Equal(t, "cg-1", p.CaregiverID)
		require.Equal(t, "u1", p.UserID)
		require.Equal(t, "Anna Weber", p.FullName)
	})

	t.Run(`empty user id is unauthenticated`, func(t *testing.T) {
		_, err := newTestResolver().ResolveCaregiver("")
		require.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))
	})

	t.Run(`a user without a caregiver profile is forbidden`, func(t *testing.T) {
		_, err := newTestResolver().ResolveCaregiver("op-user-1")
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})
}

func TestResolveOperator(t *testing.T) {
	t.Run(`resolves a registered operator`, func(t *testing.T) {
		p, err := newTestResolver().ResolveOperator("op-user-1")
		require.Nil(t, err)
		require.Equal(t, "op-1", p.OperatorID)
		require.Equal(t, "Sunrise Care GmbH", p.CompanyName)
	})

	t.Run(`empty user id is unauthenticated`, func(t *testing.T) {
		_, err := newTestResolver().ResolveOperator("")
		require.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))
	})

	t.Run(`a user without an operator profile is forbidden`, func(t *testing.T) {
		_, err := newTestResolver().ResolveOperator("u1")
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})
}
