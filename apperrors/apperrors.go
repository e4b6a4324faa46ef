// Package apperrors carries the failure taxonomy of the shift workflow.
// Handlers return these; the controller layer maps them to HTTP statuses.
// Anything that is not an apperrors value is treated as an internal error.
package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Unauthenticated(message string) error {
	return New(KindUnauthenticated, message)
}

func Forbidden(message string) error {
	return New(KindForbidden, message)
}

func NotFound(message string) error {
	return New(KindNotFound, message)
}

func Conflict(message string) error {
	return New(KindConflict, message)
}

func Validation(message string) error {
	return New(KindValidation, message)
}

// KindOf unwraps err looking for a taxonomy error; plain errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

var kindStatus = map[Kind]int{
	KindUnauthenticated: fiber.StatusUnauthorized,
	KindForbidden:       fiber.StatusForbidden,
	KindNotFound:        fiber.StatusNotFound,
	KindConflict:        fiber.StatusConflict,
	KindValidation:      fiber.StatusBadRequest,
}

func HTTPStatus(err error) int {
	if status, exist := kindStatus[KindOf(err)]; exist {
		return status
	}
	return fiber.StatusInternalServerError
}
