package shifthandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"carelink-backend/apperrors"
	"carelink-backend/db"
	"carelink-backend/lib/notification"
	"carelink-backend/lib/principal"
	shiftstore "carelink-backend/lib/shift/store"
	"carelink-backend/lib/storage"
	apimodels "carelink-backend/models/api"
	shiftapimodels "carelink-backend/models/api/shift"
	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	Claim(userID, shiftID string) (shiftapimodels.ClaimView, error)
	ListOpen(userID string, filter shiftapimodels.ShiftFilter) (list []shiftapimodels.ShiftView, rowCount int64, err error)
	ListMine(userID string, pagination apimodels.Pagination) (list []shiftapimodels.ShiftView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		guard:    principal.Instance,
		store:    shiftstore.NewInstance(db.DB),
		tx:       storage.NewTransactor(db.DB),
		notifier: notification.Instance,
	}
}

type impl struct {
	guard    principal.Provider
	store    shiftstore.Provider
	tx       storage.Transactor
	notifier notification.Provider
}

// Claim takes sole ownership of an OPEN shift for the calling caregiver.
// The status re-check runs inside the same transaction as the hire insert,
// so one of N concurrent claims wins and the rest get a Conflict.
func (i impl) Claim(userID, shiftID string) (shiftapimodels.ClaimView, error) {
	caller, err := i.guard.ResolveCaregiver(userID)
	if err != nil {
		return shiftapimodels.ClaimView{}, err
	}
	logger := log.
		WithField("shift_id", shiftID).
		WithField("caregiver_id", caller.CaregiverID)

	result := shiftapimodels.ClaimView{}
	claimedRec := dbmodels.Shift{}
	err = i.tx.InTransaction(func(s storage.Stores) error {
		rec, err := s.Shifts().GetByID(shiftID)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("shift not found")
		}
		claimed, err := s.Shifts().ClaimOpen(shiftID, caller.CaregiverID)
		if err != nil {
			return err
		}
		if !claimed {
			// lost the race or the shift was never open; re-read the
			// post-transition state to pick the message
			current, err := s.Shifts().GetByID(shiftID)
			if err != nil {
				return err
			}
			if current == nil {
				return apperrors.NotFound("shift not found")
			}
			if current.CaregiverID != nil && *current.CaregiverID != caller.CaregiverID {
				return apperrors.Conflict("shift is already assigned to another caregiver")
			}
			return apperrors.Conflict("shift is not available for claiming")
		}
		hireID, err := s.Hires().Create(dbmodels.Hire{
			ShiftID:     shiftID,
			CaregiverID: caller.CaregiverID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to record hire")
		}
		updated, err := s.Shifts().GetByID(shiftID)
		if err != nil {
			return err
		}
		claimedRec = *updated
		result.Shift = shiftapimodels.ShiftConvert(*updated)
		result.HireID = hireID
		return nil
	})
	if err != nil {
		return shiftapimodels.ClaimView{}, err
	}
	logger.WithField("hire_id", result.HireID).Info("shift claimed")
	i.notifier.ShiftClaimed(claimedRec, caller.FullName)
	return result, nil
}

func (i impl) ListOpen(userID string, filter shiftapimodels.ShiftFilter) (list []shiftapimodels.ShiftView, rowCount int64, err error) {
	if _, err = i.guard.ResolveCaregiver(userID); err != nil {
		return nil, 0, err
	}
	now := time.Now()
	rowCount, err = i.store.ListOpenCount(now, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.ListOpen(now, filter)
	if err != nil {
		log.WithError(err).Error("failed to list open shifts")
		return nil, 0, err
	}
	result := make([]shiftapimodels.ShiftView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, shiftapimodels.ShiftConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListMine(userID string, pagination apimodels.Pagination) (list []shiftapimodels.ShiftView, rowCount int64, err error) {
	caller, err := i.guard.ResolveCaregiver(userID)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err = i.store.ListByCaregiverCount(caller.CaregiverID)
	if err != nil {
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	recList, err := i.store.ListByCaregiver(caller.CaregiverID, page, limit)
	if err != nil {
		log.WithError(err).Error("failed to list caregiver shifts")
		return nil, 0, err
	}
	result := make([]shiftapimodels.ShiftView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, shiftapimodels.ShiftConvert(rec))
	}
	return result, rowCount, nil
}
