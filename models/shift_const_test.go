package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShiftStatusIsAllowChange(t *testing.T) {
	t.Run(`only forward single-step transitions are allowed`, func(t *testing.T) {
		require.True(t, ShiftStatusOpen.IsAllowChange(ShiftStatusAssigned))
		require.True(t, ShiftStatusAssigned.IsAllowChange(ShiftStatusInProgress))
		require.True(t, ShiftStatusInProgress.IsAllowChange(ShiftStatusCompleted))

		require.False(t, ShiftStatusOpen.IsAllowChange(ShiftStatusInProgress))
		require.False(t, ShiftStatusOpen.IsAllowChange(ShiftStatusCompleted))
		require.False(t, ShiftStatusAssigned.IsAllowChange(ShiftStatusOpen))
		require.False(t, ShiftStatusCompleted.IsAllowChange(ShiftStatusOpen))
		require.False(t, ShiftStatusCompleted.IsAllowChange(ShiftStatusCompleted))
	})
}

func TestTimesheetStatusIsAllowChange(t *testing.T) {
	t.Run(`only forward single-step transitions are allowed`, func(t *testing.T) {
		require.True(t, TimesheetStatusDraft.IsAllowChange(TimesheetStatusSubmitted))
		require.True(t, TimesheetStatusSubmitted.IsAllowChange(TimesheetStatusApproved))

		require.False(t, TimesheetStatusDraft.IsAllowChange(TimesheetStatusApproved))
		require.False(t, TimesheetStatusApproved.IsAllowChange(TimesheetStatusDraft))
		require.False(t, TimesheetStatusSubmitted.IsAllowChange(TimesheetStatusDraft))
	})
}

func TestStatusValidate(t *testing.T) {
	t.Run(`known statuses pass`, func(t *testing.T) {
		require.Nil(t, ShiftStatusOpen.Validate())
		require.Nil(t, TimesheetStatusApproved.Validate())
	})

	t.Run(`unknown statuses fail`, func(t *testing.T) {
		require.NotNil(t, ShiftStatus("CANCELLED").Validate())
		require.NotNil(t, TimesheetStatus("REJECTED").Validate())
	})
}
