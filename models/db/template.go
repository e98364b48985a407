package dbmodels

import (
	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type TemplateItem struct {
	ID       string              `json:"id"`
	Text     string              `json:"text"`
	Weight   float64             `json:"weight"` // вклад вопроса в итоговый балл, в процентных пунктах
	Type     models.QuestionType `json:"type"`
	Required bool                `json:"required"`
	Options  []string            `json:"options,omitempty"`
}

type TemplateCategory struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Items []TemplateItem `json:"items"`
}

type AppraisalTemplate struct {
	BaseModel
	Name       string                  `gorm:"type:varchar(255)"`
	Type       models.RelationshipType `gorm:"type:varchar(50);index"`
	Categories []TemplateCategory      `gorm:"serializer:json"`
}

func (t AppraisalTemplate) Validate() error {
	if t.Name == "" {
		return errors.New("не указано название шаблона оценки")
	}
	if t.Type == "" {
		return errors.New("не указан тип шаблона оценки")
	}
	return nil
}
