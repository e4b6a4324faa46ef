package models

import "github.com/pkg/errors"

type ShiftStatus string

const (
	ShiftStatusOpen       ShiftStatus = "OPEN"
	ShiftStatusAssigned   ShiftStatus = "ASSIGNED"
	ShiftStatusInProgress ShiftStatus = "IN_PROGRESS"
	ShiftStatusCompleted  ShiftStatus = "COMPLETED"
)

// shift lifecycle: OPEN → ASSIGNED → IN_PROGRESS → COMPLETED, no skips, no reversals
var shiftStatusNext = map[ShiftStatus]ShiftStatus{
	ShiftStatusOpen:       ShiftStatusAssigned,
	ShiftStatusAssigned:   ShiftStatusInProgress,
	ShiftStatusInProgress: ShiftStatusCompleted,
}

func (s ShiftStatus) IsAllowChange(next ShiftStatus) bool {
	return shiftStatusNext[s] == next
}

func (s ShiftStatus) Validate() error {
	switch s {
	case ShiftStatusOpen, ShiftStatusAssigned, ShiftStatusInProgress, ShiftStatusCompleted:
		return nil
	}
	return errors.Errorf("unknown shift status: %v", s)
}

type TimesheetStatus string

const (
	TimesheetStatusDraft     TimesheetStatus = "DRAFT"
	TimesheetStatusSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetStatusApproved  TimesheetStatus = "APPROVED"
)

var timesheetStatusNext = map[TimesheetStatus]TimesheetStatus{
	TimesheetStatusDraft:     TimesheetStatusSubmitted,
	TimesheetStatusSubmitted: TimesheetStatusApproved,
}

func (s TimesheetStatus) IsAllowChange(next TimesheetStatus) bool {
	return timesheetStatusNext[s] == next
}

func (s TimesheetStatus) Validate() error {
	switch s {
	case TimesheetStatusDraft, TimesheetStatusSubmitted, TimesheetStatusApproved:
		return nil
	}
	return errors.Errorf("unknown timesheet status: %v", s)
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type PaymentType string

const (
	PaymentTypeCaregiverPayment PaymentType = "CAREGIVER_PAYMENT"
)

type NotificationType string

const (
	NotificationTypeBooking NotificationType = "BOOKING"
	NotificationTypePayment NotificationType = "PAYMENT"
)
