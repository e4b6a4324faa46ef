package shifthandler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carelink-backend/apperrors"
	"carelink-backend/lib/principal"
	"carelink-backend/lib/storage/storagetest"
	"carelink-backend/models"
	apimodels "carelink-backend/models/api"
	shiftapimodels "carelink-backend/models/api/shift"
	dbmodels "carelink-backend/models/db"
)

type stubGuard struct {
	caregivers map[string]principal.CaregiverPrincipal
}

func (g stubGuard) ResolveCaregiver(userID string) (principal.CaregiverPrincipal, error) {
	if userID == "" {
		return principal.CaregiverPrincipal{}, apperrors.Unauthenticated("authentication required")
	}
	p, exist := g.caregivers[userID]
	if !exist {
		return principal.CaregiverPrincipal{}, apperrors.Forbidden("caller is not registered as a caregiver")
	}
	return p, nil
}

func (g stubGuard) ResolveOperator(userID string) (principal.OperatorPrincipal, error) {
	return principal.OperatorPrincipal{}, apperrors.Forbidden("caller is not registered as an operator")
}

type noopNotifier struct{}

func (noopNotifier) ShiftClaimed(dbmodels.Shift, string)         {}
func (noopNotifier) TimesheetSubmitted(dbmodels.Timesheet, float64) {}
func (noopNotifier) TimesheetApproved(dbmodels.Timesheet)        {}

func caregiverGuard(users ...string) stubGuard {
	g := stubGuard{caregivers: map[string]principal.CaregiverPrincipal{}}
	for _, userID := range users {
		g.caregivers[userID] = principal.CaregiverPrincipal{
			CaregiverID: "cg-" + userID,
			UserID:      userID,
			FullName:    "Caregiver " + userID,
		}
	}
	return g
}

func newTestHandler(mem *storagetest.MemStore, guard stubGuard) impl {
	return impl{
		guard:    guard,
		store:    mem.Shifts(),
		tx:       mem,
		notifier: noopNotifier{},
	}
}

func openShift(mem *storagetest.MemStore, rate float64) dbmodels.Shift {
	home := mem.AddHome(dbmodels.Home{Name: "Sunrise Home", OperatorID: "op-1"})
	return mem.AddShift(dbmodels.Shift{
		HomeID:     home.ID,
		StartTime:  time.Now().Add(24 * time.Hour),
		EndTime:    time.Now().Add(32 * time.Hour),
		HourlyRate: rate,
		Status:     models.ShiftStatusOpen,
	})
}

func TestClaim(t *testing.T) {
	t.Run(`claim assigns the shift and records a hire`, func(t *testing.T) {
		mem := storagetest.New()
		shift := openShift(mem, 25.50)
		h := newTestHandler(mem, caregiverGuard("u1"))

		view, err := h.Claim("u1", shift.ID)
		require.Nil(t, err)
		require.Equal(t, models.ShiftStatusAssigned, view.Shift.Status)
		require.Equal(t, "cg-u1", view.Shift.CaregiverID)
		require.NotEmpty(t, view.HireID)

		hire, err := mem.Hires().GetByShiftID(shift.ID)
		require.Nil(t, err)
		require.NotNil(t, hire)
		require.Equal(t, "cg-u1", hire.CaregiverID)
	})

	t.Run(`claim of a missing shift is not found`, func(t *testing.T) {
		mem := storagetest.New()
		h := newTestHandler(mem, caregiverGuard("u1"))

		_, err := h.Claim("u1", "missing")
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run(`non-caregiver caller is forbidden`, func(t *testing.T) {
		mem := storagetest.New()
		shift := openShift(mem, 20)
		h := newTestHandler(mem, caregiverGuard("u1"))

		_, err := h.Claim("operator-user", shift.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run(`anonymous caller is unauthenticated`, func(t *testing.T) {
		mem := storagetest.New()
		shift := openShift(mem, 20)
		h := newTestHandler(mem, caregiverGuard("u1"))

		_, err := h.Claim("", shift.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))
	})

	t.Run(`second claim conflicts and leaves the first assignment intact`, func(t *testing.T) {
		mem := storagetest.New()
		shift := openShift(mem, 25.50)
		h := newTestHandler(mem, caregiverGuard("u1", "u2"))

		_, err := h.Claim("u1", shift.ID)
		require.Nil(t, err)

		_, err = h.Claim("u2", shift.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		require.Contains(t, err.Error(), "already assigned to another caregiver")

		current, err := mem.Shifts().GetByID(shift.ID)
		require.Nil(t, err)
		require.Equal(t, models.ShiftStatusAssigned, current.Status)
		require.Equal(t, "cg-u1", *current.CaregiverID)

		hire, err := mem.Hires().GetByShiftID(shift.ID)
		require.Nil(t, err)
		require.Equal(t, "cg-u1", hire.CaregiverID)
	})

	t.Run(`claim of an in-progress shift reports not available`, func(t *testing.T) {
		mem := storagetest.New()
		home := mem.AddHome(dbmodels.Home{Name: "Sunrise Home"})
		caregiverID := "cg-u1"
		shift := mem.AddShift(dbmodels.Shift{
			HomeID:      home.ID,
			CaregiverID: &caregiverID,
			StartTime:   time.Now().Add(time.Hour),
			Status:      models.ShiftStatusInProgress,
		})
		h := newTestHandler(mem, caregiverGuard("u1"))

		_, err := h.Claim("u1", shift.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		require.Contains(t, err.Error(), "not available for claiming")
	})
}

func TestClaimRace(t *testing.T) {
	t.Run(`exactly one of N concurrent claims wins`, func(t *testing.T) {
		const contenders = 24
		mem := storagetest.New()
		shift := openShift(mem, 30)
		users := make([]string, 0, contenders)
		for i := 0; i < contenders; i++ {
			users = append(users, "u"+string(rune('A'+i)))
		}
		h := newTestHandler(mem, caregiverGuard(users...))

		var wg sync.WaitGroup
		winners := make(chan string, contenders)
		losers := make(chan error, contenders)
		for _, userID := range users {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				view, err := h.Claim(userID, shift.ID)
				if err != nil {
					losers <- err
					return
				}
				winners <- view.Shift.CaregiverID
			}(userID)
		}
		wg.Wait()
		close(winners)
		close(losers)

		require.Equal(t, 1, len(winners))
		require.Equal(t, contenders-1, len(losers))
		for err := range losers {
			require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		}

		winner := <-winners
		current, err := mem.Shifts().GetByID(shift.ID)
		require.Nil(t, err)
		require.Equal(t, models.ShiftStatusAssigned, current.Status)
		require.Equal(t, winner, *current.CaregiverID)
	})
}

func TestListOpen(t *testing.T) {
	t.Run(`lists only upcoming open shifts`, func(t *testing.T) {
		mem := storagetest.New()
		openShift(mem, 20)
		openShift(mem, 22)
		home := mem.AddHome(dbmodels.Home{Name: "Elm Home"})
		mem.AddShift(dbmodels.Shift{ // already started, excluded
			HomeID:    home.ID,
			StartTime: time.Now().Add(-time.Hour),
			Status:    models.ShiftStatusOpen,
		})
		caregiverID := "cg-u2"
		mem.AddShift(dbmodels.Shift{ // assigned, excluded
			HomeID:      home.ID,
			CaregiverID: &caregiverID,
			StartTime:   time.Now().Add(time.Hour),
			Status:      models.ShiftStatusAssigned,
		})
		h := newTestHandler(mem, caregiverGuard("u1"))

		list, rowCount, err := h.ListOpen("u1", shiftapimodels.ShiftFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 2)
		for _, view := range list {
			require.Equal(t, models.ShiftStatusOpen, view.Status)
		}
	})

	t.Run(`non-caregiver caller is forbidden`, func(t *testing.T) {
		mem := storagetest.New()
		h := newTestHandler(mem, caregiverGuard("u1"))

		_, _, err := h.ListOpen("stranger", shiftapimodels.ShiftFilter{})
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})
}

func TestListMine(t *testing.T) {
	t.Run(`returns the caller's shifts in any status`, func(t *testing.T) {
		mem := storagetest.New()
		home := mem.AddHome(dbmodels.Home{Name: "Elm Home"})
		mine := "cg-u1"
		other := "cg-u2"
		mem.AddShift(dbmodels.Shift{HomeID: home.ID, CaregiverID: &mine, Status: models.ShiftStatusAssigned, StartTime: time.Now()})
		mem.AddShift(dbmodels.Shift{HomeID: home.ID, CaregiverID: &mine, Status: models.ShiftStatusCompleted, StartTime: time.Now().Add(-48 * time.Hour)})
		mem.AddShift(dbmodels.Shift{HomeID: home.ID, CaregiverID: &other, Status: models.ShiftStatusAssigned, StartTime: time.Now()})
		h := newTestHandler(mem, caregiverGuard("u1", "u2"))

		list, rowCount, err := h.ListMine("u1", apimodels.Pagination{})
		require.Nil(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 2)
		for _, view := range list {
			require.Equal(t, "cg-u1", view.CaregiverID)
		}
	})
}
