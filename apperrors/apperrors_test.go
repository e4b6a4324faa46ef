package apperrors

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run(`taxonomy errors keep their kind`, func(t *testing.T) {
		require.Equal(t, KindNotFound, KindOf(NotFound("shift not found")))
		require.Equal(t, KindConflict, KindOf(Conflict("shift is not available for claiming")))
		require.Equal(t, KindValidation, KindOf(Validation("break_minutes must not be negative")))
	})

	t.Run(`wrapping preserves the kind`, func(t *testing.T) {
		err := errors.Wrap(Conflict("timesheet is already clocked out"), "clock-out failed")
		require.Equal(t, KindConflict, KindOf(err))
		require.True(t, IsKind(err, KindConflict))
	})

	t.Run(`plain errors are internal`, func(t *testing.T) {
		require.Equal(t, KindInternal, KindOf(errors.New("connection reset")))
		require.Equal(t, KindInternal, KindOf(nil))
	})
}

func TestHTTPStatus(t *testing.T) {
	t.Run(`each kind maps to its status`, func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, HTTPStatus(Unauthenticated("authentication required")))
		require.Equal(t, fiber.StatusForbidden, HTTPStatus(Forbidden("caller is not registered as a caregiver")))
		require.Equal(t, fiber.StatusNotFound, HTTPStatus(NotFound("timesheet not found")))
		require.Equal(t, fiber.StatusConflict, HTTPStatus(Conflict("shift is already assigned to another caregiver")))
		require.Equal(t, fiber.StatusBadRequest, HTTPStatus(Validation("break_minutes must not be negative")))
	})

	t.Run(`unknown errors are internal server errors`, func(t *testing.T) {
		require.Equal(t, fiber.StatusInternalServerError, HTTPStatus(errors.New("boom")))
	})
}
