package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type AppraisalResponse struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

type Appraisal struct {
	BaseModel
	TemplateID     string              `gorm:"type:varchar(36)"`
	EmployeeID     string              `gorm:"type:varchar(36);index"`
	AppraiserID    string              `gorm:"type:varchar(36);index"`
	ReviewPeriodID string              `gorm:"type:varchar(36);index"`
	Responses      []AppraisalResponse `gorm:"serializer:json"`
	Score          float64
	MaxScore       float64
	CompletedAt    *time.Time
}

func (a Appraisal) Validate() error {
	if a.TemplateID == "" {
		return errors.New("не указан шаблон оценки")
	}
	if a.EmployeeID == "" || a.AppraiserID == "" {
		return errors.New("не указана пара оценки")
	}
	return nil
}

func (a Appraisal) IsCompleted() bool {
	return a.CompletedAt != nil
}
