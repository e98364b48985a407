package dbmodels

import (
	"time"

	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type ReviewPeriod struct {
	BaseModel
	Name      string            `gorm:"type:varchar(255)"`
	Type      models.PeriodType `gorm:"type:varchar(50)"`
	Year      int               `gorm:"index"`
	StartDate time.Time
	EndDate   time.Time
	Active    bool `gorm:"index"`
}

func (p ReviewPeriod) Validate() error {
	if p.Name == "" {
		return errors.New("не указано название периода оценки")
	}
	if p.EndDate.Before(p.StartDate) {
		return errors.New("дата окончания периода раньше даты начала")
	}
	return nil
}
