package authhandler

import (
	employeeshandler "appraisal-backend/lib/employees"
	usershandler "appraisal-backend/lib/users"
	authutils "appraisal-backend/lib/utils/auth-utils"
	"appraisal-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Session явный контекст личности, собирается из клеймов токена на каждый запрос;
// никакого неявного глобального состояния "кто вошел" нет
type Session struct {
	UserID     string
	EmployeeID string
	Name       string
	Role       models.UserRole
}

func GetSession(ctx *fiber.Ctx) Session {
	claims := authutils.GetClaims(ctx)
	session := Session{}
	if sub, ok := claims["sub"].(string); ok {
		session.UserID = sub
	}
	if employee, ok := claims["employee"].(string); ok {
		session.EmployeeID = employee
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		session.Role = models.UserRole(role)
	}
	return session
}

// ValidateSession сессия недействительна, если учетная запись исчезла, заблокирована
// или привязанный сотрудник удален либо имеет блокирующий статус
func ValidateSession(session Session) error {
	if session.UserID == "" {
		return errors.New("сессия не содержит пользователя")
	}
	user, err := usershandler.Instance.GetByID(session.UserID)
	if err != nil {
		return err
	}
	if user == nil || !user.Active {
		return errors.New("учетная запись недействительна")
	}
	if user.EmployeeID != "" {
		employee, err := employeeshandler.Instance.GetByID(user.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil || employee.EmploymentStatus.IsLocking() {
			return errors.New("учетная запись недействительна")
		}
	}
	return nil
}
