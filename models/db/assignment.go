package dbmodels

import (
	"time"

	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type AppraisalAssignment struct {
	BaseModel
	ReviewPeriodID   string                  `gorm:"type:varchar(36);index"`
	AppraiserID      string                  `gorm:"type:varchar(36);index"`
	AppraiserName    string                  `gorm:"type:varchar(255)"` // снимок имени на момент назначения
	EmployeeID       string                  `gorm:"type:varchar(36);index"`
	EmployeeName     string                  `gorm:"type:varchar(255)"`
	RelationshipType models.RelationshipType `gorm:"type:varchar(50);index"`
	TemplateID       string                  `gorm:"type:varchar(36)"`
	Status           models.AssignmentStatus `gorm:"type:varchar(50);index"`
	AssignmentType   models.AssignmentType   `gorm:"type:varchar(50)"`
	LinkToken        string                  `gorm:"type:varchar(64);index"`
	DueDate          *time.Time
}

func (a AppraisalAssignment) Validate() error {
	if a.AppraiserID == "" {
		return errors.New("не указан оценивающий")
	}
	if a.EmployeeID == "" {
		return errors.New("не указан оцениваемый сотрудник")
	}
	if a.ReviewPeriodID == "" {
		return errors.New("не указан период оценки")
	}
	if a.RelationshipType == "" {
		return errors.New("не указан тип отношения оценки")
	}
	return nil
}
