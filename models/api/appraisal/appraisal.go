package appraisalapimodels

import (
	"time"

	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type Response struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

type Appraisal struct {
	ID             string     `json:"id"`
	TemplateID     string     `json:"templateId"`
	EmployeeID     string     `json:"employeeId"`
	AppraiserID    string     `json:"appraiserId"`
	ReviewPeriodID string     `json:"reviewPeriodId"`
	Responses      []Response `json:"responses"`
	Score          float64    `json:"score"`
	MaxScore       float64    `json:"maxScore"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type SubmitAppraisal struct {
	AssignmentID   string     `json:"assignmentId"`
	TemplateID     string     `json:"templateId"`
	EmployeeID     string     `json:"employeeId"`
	AppraiserID    string     `json:"appraiserId"`
	ReviewPeriodID string     `json:"reviewPeriodId"`
	Responses      []Response `json:"responses"`
}

func (r SubmitAppraisal) Validate() error {
	if r.TemplateID == "" {
		return errors.New("не указан шаблон оценки")
	}
	if r.EmployeeID == "" || r.AppraiserID == "" {
		return errors.New("не указана пара оценки")
	}
	if len(r.Responses) == 0 {
		return errors.New("форма оценки не содержит ответов")
	}
	return nil
}

type ReviewPeriod struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      models.PeriodType `json:"type"`
	Year      int               `json:"year"`
	StartDate time.Time         `json:"startDate"`
	EndDate   time.Time         `json:"endDate"`
	Active    bool              `json:"active"`
}

func (p ReviewPeriod) Validate() error {
	if p.Name == "" {
		return errors.New("не указано название периода оценки")
	}
	return nil
}

type Link struct {
	ID             string     `json:"id"`
	Token          string     `json:"token"`
	AppraiserID    string     `json:"appraiserId"`
	EmployeeID     string     `json:"employeeId"`
	TemplateID     string     `json:"templateId"`
	ReviewPeriodID string     `json:"reviewPeriodId"`
	Used           bool       `json:"used"`
	UsedAt         *time.Time `json:"usedAt,omitempty"`
}

type CreateLink struct {
	AppraiserID    string `json:"appraiserId"`
	EmployeeID     string `json:"employeeId"`
	TemplateID     string `json:"templateId"`
	ReviewPeriodID string `json:"reviewPeriodId"`
	SendTo         string `json:"sendTo"` // почта для отправки приглашения, опционально
}

func (r CreateLink) Validate() error {
	if r.AppraiserID == "" || r.EmployeeID == "" {
		return errors.New("не указана пара оценки для приглашения")
	}
	if r.TemplateID == "" {
		return errors.New("не указан шаблон оценки")
	}
	return nil
}

type PerformanceSummary struct {
	ID             string                          `json:"id"`
	EmployeeID     string                          `json:"employeeId"`
	ReviewPeriodID string                          `json:"reviewPeriodId"`
	AveragePercent float64                         `json:"averagePercent"`
	AppraisalCount int                             `json:"appraisalCount"`
	CountByType    map[models.RelationshipType]int `json:"countByType,omitempty"`
}
