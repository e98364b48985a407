package dbmodels

import (
	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type Employee struct {
	BaseModel
	Name                string                  `gorm:"type:varchar(255)"`
	Email               string                  `gorm:"type:varchar(255)"`
	Role                string                  `gorm:"type:varchar(255)"` // должность, свободный текст
	Hierarchy           models.Hierarchy        `gorm:"type:varchar(50);index"`
	ExecutiveType       models.ExecutiveType    `gorm:"type:varchar(50)"`
	TeamID              string                  `gorm:"type:varchar(36);index"`
	ReportsTo           string                  `gorm:"type:varchar(36);index"`
	DottedLineReportsTo []string                `gorm:"serializer:json"`
	EmploymentStatus    models.EmploymentStatus `gorm:"type:varchar(50);index"`
}

func (e Employee) Validate() error {
	if e.Name == "" {
		return errors.New("не указано имя сотрудника")
	}
	if e.Hierarchy == "" {
		return errors.New("не указан уровень иерархии сотрудника")
	}
	return nil
}

// IsActive сотрудник с блокирующим статусом исключается из активных списков и оргструктуры
func (e Employee) IsActive() bool {
	return !e.EmploymentStatus.IsLocking()
}
