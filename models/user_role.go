package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN_ROLE"
	UserRoleHR       UserRole = "HR_ROLE"
	UserRoleEmployee UserRole = "EMPLOYEE_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:    "Администратор",
	UserRoleHR:       "HR-специалист",
	UserRoleEmployee: "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

const SystemUser = "Система"
