package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

// AppraisalLink одноразовое приглашение на прохождение оценки,
// привязывает пару оценивающий-оцениваемый к шаблону и периоду
type AppraisalLink struct {
	BaseModel
	Token          string `gorm:"type:varchar(64);uniqueIndex:idx_appraisal_link_token"`
	AppraiserID    string `gorm:"type:varchar(36);index"`
	EmployeeID     string `gorm:"type:varchar(36);index"`
	TemplateID     string `gorm:"type:varchar(36)"`
	ReviewPeriodID string `gorm:"type:varchar(36);index"`
	Used           bool   `gorm:"index"`
	UsedAt         *time.Time
}

func (l AppraisalLink) Validate() error {
	if l.Token == "" {
		return errors.New("не указан токен приглашения")
	}
	if l.AppraiserID == "" || l.EmployeeID == "" {
		return errors.New("не указана пара оценки для приглашения")
	}
	return nil
}
