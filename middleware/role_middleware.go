package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "carelink-backend/lib/utils/auth-utils"
	"carelink-backend/models"
	apimodels "carelink-backend/models/api"
)

func CaregiverRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsCaregiver() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("caregiver role required"))
		}
		return ctx.Next()
	}
}

func OperatorRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsOperator() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operator role required"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
