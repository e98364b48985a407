package usershandler

import "strings"

// UserEvent полезная нагрузка события userCreated
type UserEvent struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// usernameCandidate базовый кандидат имени пользователя:
// локальная часть почты, а без почты - имя в виде first.last
func usernameCandidate(name, email string) string {
	if email != "" {
		if at := strings.Index(email, "@"); at > 0 {
			return toLower(email[:at])
		}
		return toLower(email)
	}
	parts := strings.Fields(toLower(name))
	return strings.Join(parts, ".")
}

func toLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
