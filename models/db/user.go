package dbmodels

import (
	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type User struct {
	BaseModel
	Username   string          `gorm:"type:varchar(255);index:idx_user_username"`
	Password   string          `gorm:"type:varchar(255)"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
	EmployeeID string          `gorm:"type:varchar(36);index:idx_user_employee"`
	Active     bool            `gorm:"index"`
}

func (u User) Validate() error {
	if u.Username == "" {
		return errors.New("не указано имя пользователя")
	}
	if u.Password == "" {
		return errors.New("не указан пароль пользователя")
	}
	return nil
}
