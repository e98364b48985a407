package appraisalapimodels

import (
	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type TemplateItem struct {
	ID       string              `json:"id"`
	Text     string              `json:"text"`
	Weight   float64             `json:"weight"`
	Type     models.QuestionType `json:"type"`
	Required bool                `json:"required"`
	Options  []string            `json:"options,omitempty"`
}

type TemplateCategory struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Items []TemplateItem `json:"items"`
}

type Template struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Type       models.RelationshipType `json:"type"`
	Categories []TemplateCategory      `json:"categories"`
}

func (t Template) Validate() error {
	if t.Name == "" {
		return errors.New("не указано название шаблона оценки")
	}
	if t.Type == "" {
		return errors.New("не указан тип шаблона оценки")
	}
	return nil
}
