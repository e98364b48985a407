package middleware

import (
	authhandler "appraisal-backend/lib/auth"
	authutils "appraisal-backend/lib/utils/auth-utils"
	"appraisal-backend/models"
	apimodels "appraisal-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// SessionRequired перепроверка сессии на каждый запрос:
// токен может пережить блокировку учетной записи или сотрудника
func SessionRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session := authhandler.GetSession(ctx)
		if err := authhandler.ValidateSession(session); err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("сессия недействительна"))
		}
		return ctx.Next()
	}
}

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetRole(ctx) != models.UserRoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

func GetRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
