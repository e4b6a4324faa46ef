package timesheethandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"carelink-backend/apperrors"
	"carelink-backend/db"
	"carelink-backend/lib/notification"
	"carelink-backend/lib/principal"
	"carelink-backend/lib/storage"
	timesheetstore "carelink-backend/lib/timesheet/store"
	"carelink-backend/models"
	timesheetapimodels "carelink-backend/models/api/timesheet"
	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	ClockIn(userID, shiftID string) (timesheetapimodels.TimesheetView, error)
	ClockOut(userID, timesheetID string, data timesheetapimodels.ClockOutData) (timesheetapimodels.TimesheetView, error)
	Approve(userID, timesheetID string) (timesheetapimodels.TimesheetView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		guard:    principal.Instance,
		store:    timesheetstore.NewInstance(db.DB),
		tx:       storage.NewTransactor(db.DB),
		notifier: notification.Instance,
	}
}

type impl struct {
	guard    principal.Provider
	store    timesheetstore.Provider
	tx       storage.Transactor
	notifier notification.Provider
}

// ClockIn opens the work cycle: shift ASSIGNED → IN_PROGRESS plus a DRAFT
// timesheet, written in one transaction so neither exists without the other.
func (i impl) ClockIn(userID, shiftID string) (timesheetapimodels.TimesheetView, error) {
	caller, err := i.guard.ResolveCaregiver(userID)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	logger := log.
		WithField("shift_id", shiftID).
		WithField("caregiver_id", caller.CaregiverID)

	result := timesheetapimodels.TimesheetView{}
	err = i.tx.InTransaction(func(s storage.Stores) error {
		rec, err := s.Shifts().GetByID(shiftID)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("shift not found")
		}
		if rec.CaregiverID != nil && !rec.IsAssignedTo(caller.CaregiverID) {
			return apperrors.Forbidden("shift is assigned to another caregiver")
		}
		if rec.Status != models.ShiftStatusAssigned {
			return apperrors.Conflict("shift is not ready for clock-in")
		}
		exists, err := s.Timesheets().ExistsForShift(shiftID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.Conflict("a timesheet already exists for this shift")
		}
		moved, err := s.Shifts().UpdateStatusIf(shiftID, models.ShiftStatusAssigned, models.ShiftStatusInProgress)
		if err != nil {
			return err
		}
		if !moved {
			return apperrors.Conflict("shift is not ready for clock-in")
		}
		id, err := s.Timesheets().Create(dbmodels.Timesheet{
			ShiftID:     shiftID,
			CaregiverID: caller.CaregiverID,
			StartTime:   time.Now(),
			Status:      models.TimesheetStatusDraft,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create timesheet")
		}
		created, err := s.Timesheets().GetByID(id)
		if err != nil {
			return err
		}
		result = timesheetapimodels.TimesheetConvert(*created)
		return nil
	})
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	logger.WithField("timesheet_id", result.ID).Info("clocked in")
	return result, nil
}

// ClockOut closes the cycle: timesheet DRAFT → SUBMITTED and shift
// IN_PROGRESS → COMPLETED in one transaction, plus the pending payment stub.
func (i impl) ClockOut(userID, timesheetID string, data timesheetapimodels.ClockOutData) (timesheetapimodels.TimesheetView, error) {
	caller, err := i.guard.ResolveCaregiver(userID)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	if err = data.Validate(); err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	logger := log.
		WithField("timesheet_id", timesheetID).
		WithField("caregiver_id", caller.CaregiverID)

	result := timesheetapimodels.TimesheetView{}
	submittedRec := dbmodels.Timesheet{}
	var amount float64
	err = i.tx.InTransaction(func(s storage.Stores) error {
		rec, err := s.Timesheets().GetByID(timesheetID)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("timesheet not found")
		}
		if !rec.IsOwnedBy(caller.CaregiverID) {
			return apperrors.Forbidden("timesheet belongs to another caregiver")
		}
		if rec.Status != models.TimesheetStatusDraft {
			return apperrors.Conflict("timesheet is already clocked out")
		}
		now := time.Now()
		moved, err := s.Timesheets().UpdateIf(timesheetID, models.TimesheetStatusDraft, map[string]interface{}{
			"status":        models.TimesheetStatusSubmitted,
			"end_time":      now,
			"break_minutes": data.BreakMinutes,
			"notes":         data.Notes,
		})
		if err != nil {
			return err
		}
		if !moved {
			return apperrors.Conflict("timesheet is already clocked out")
		}
		completed, err := s.Shifts().UpdateStatusIf(rec.ShiftID, models.ShiftStatusInProgress, models.ShiftStatusCompleted)
		if err != nil {
			return err
		}
		if !completed {
			return errors.Errorf("shift %v is not in progress while its timesheet is a draft", rec.ShiftID)
		}
		updated, err := s.Timesheets().GetByID(timesheetID)
		if err != nil {
			return err
		}
		amount = updated.WorkedHours() * updated.Shift.HourlyRate
		_, err = s.Payments().Create(dbmodels.Payment{
			UserID:  caller.UserID,
			ShiftID: rec.ShiftID,
			Amount:  amount,
			Status:  models.PaymentStatusPending,
			Type:    models.PaymentTypeCaregiverPayment,
			Description: fmt.Sprintf("Payment for shift at %s on %s (%.2f hours)",
				updated.Shift.Home.Name, updated.Shift.StartTime.Format("Jan 2, 2006"), updated.WorkedHours()),
		})
		if err != nil {
			return errors.Wrap(err, "failed to create payment stub")
		}
		submittedRec = *updated
		result = timesheetapimodels.TimesheetConvert(*updated)
		return nil
	})
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	logger.Info("clocked out, timesheet submitted")
	i.notifier.TimesheetSubmitted(submittedRec, amount)
	return result, nil
}

// Approve is the operator-side terminal transition SUBMITTED → APPROVED.
// The shift is already COMPLETED; this touches the timesheet row only.
func (i impl) Approve(userID, timesheetID string) (timesheetapimodels.TimesheetView, error) {
	caller, err := i.guard.ResolveOperator(userID)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	logger := log.
		WithField("timesheet_id", timesheetID).
		WithField("operator_id", caller.OperatorID)

	result := timesheetapimodels.TimesheetView{}
	approvedRec := dbmodels.Timesheet{}
	err = i.tx.InTransaction(func(s storage.Stores) error {
		rec, err := s.Timesheets().GetByID(timesheetID)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("timesheet not found")
		}
		if !rec.Shift.IsOwnedByOperator(caller.OperatorID) {
			return apperrors.Forbidden("timesheet belongs to a home of another operator")
		}
		if rec.Status != models.TimesheetStatusSubmitted {
			return apperrors.Conflict("timesheet is not awaiting approval")
		}
		moved, err := s.Timesheets().UpdateIf(timesheetID, models.TimesheetStatusSubmitted, map[string]interface{}{
			"status":         models.TimesheetStatusApproved,
			"approved_by_id": caller.UserID,
			"approved_at":    time.Now(),
		})
		if err != nil {
			return err
		}
		if !moved {
			return apperrors.Conflict("timesheet is not awaiting approval")
		}
		updated, err := s.Timesheets().GetByID(timesheetID)
		if err != nil {
			return err
		}
		approvedRec = *updated
		result = timesheetapimodels.TimesheetConvert(*updated)
		return nil
	})
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	logger.Info("timesheet approved")
	i.notifier.TimesheetApproved(approvedRec)
	return result, nil
}
