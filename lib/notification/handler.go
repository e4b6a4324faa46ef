// Package notification persists in-app notification rows and mails
// operators about submitted timesheets. Everything here is best-effort:
// failures are logged and never bubble back into the workflow.
package notification

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"carelink-backend/db"
	notificationstore "carelink-backend/lib/notification/store"
	principalstore "carelink-backend/lib/principal/store"
	"carelink-backend/lib/smtp"
	"carelink-backend/models"
	dbmodels "carelink-backend/models/db"
)

type Provider interface {
	ShiftClaimed(shift dbmodels.Shift, caregiverName string)
	TimesheetSubmitted(ts dbmodels.Timesheet, amount float64)
	TimesheetApproved(ts dbmodels.Timesheet)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        notificationstore.NewInstance(db.DB),
		profileStore: principalstore.NewInstance(db.DB),
		mailer:       smtp.Instance,
	}
}

type impl struct {
	store        notificationstore.Provider
	profileStore principalstore.Provider
	mailer       smtp.Provider
}

func (i impl) ShiftClaimed(shift dbmodels.Shift, caregiverName string) {
	logger := log.WithField("shift_id", shift.ID)
	rec := dbmodels.Notification{
		UserID:  shift.Home.Operator.UserID,
		Type:    models.NotificationTypeBooking,
		Title:   "Shift Claimed",
		Message: fmt.Sprintf("%s has claimed your shift at %s on %s", caregiverName, shift.Home.Name, shift.StartTime.Format("Jan 2, 2006")),
		ShiftID: shift.ID,
	}
	if _, err := i.store.Create(rec); err != nil {
		logger.WithError(err).Error("failed to store shift claim notification")
	}
}

func (i impl) TimesheetSubmitted(ts dbmodels.Timesheet, amount float64) {
	logger := log.WithField("timesheet_id", ts.ID)
	home := ts.Shift.Home
	message := fmt.Sprintf("A timesheet for the shift at %s on %s was submitted. Pending payment: $%.2f",
		home.Name, ts.Shift.StartTime.Format("Jan 2, 2006"), amount)
	rec := dbmodels.Notification{
		UserID:  home.Operator.UserID,
		Type:    models.NotificationTypePayment,
		Title:   "Timesheet Submitted",
		Message: message,
		ShiftID: ts.ShiftID,
	}
	if _, err := i.store.Create(rec); err != nil {
		logger.WithError(err).Error("failed to store timesheet submission notification")
	}
	if home.Operator.ContactEmail != "" {
		if err := i.mailer.SendEMail(home.Operator.ContactEmail, "Timesheet Submitted", message); err != nil {
			logger.WithError(err).Error("failed to email operator about submitted timesheet")
		}
	}
}

func (i impl) TimesheetApproved(ts dbmodels.Timesheet) {
	logger := log.WithField("timesheet_id", ts.ID)
	caregiver, err := i.profileStore.CaregiverByID(ts.CaregiverID)
	if err != nil || caregiver == nil {
		logger.WithError(err).Error("failed to resolve caregiver for approval notification")
		return
	}
	rec := dbmodels.Notification{
		UserID:  caregiver.UserID,
		Type:    models.NotificationTypePayment,
		Title:   "Timesheet Approved",
		Message: fmt.Sprintf("Your timesheet for the shift at %s was approved", ts.Shift.Home.Name),
		ShiftID: ts.ShiftID,
	}
	if _, err := i.store.Create(rec); err != nil {
		logger.WithError(err).Error("failed to store timesheet approval notification")
	}
}
