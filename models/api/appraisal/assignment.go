package appraisalapimodels

import (
	"time"

	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type Assignment struct {
	ID               string                  `json:"id"`
	ReviewPeriodID   string                  `json:"reviewPeriodId"`
	AppraiserID      string                  `json:"appraiserId"`
	AppraiserName    string                  `json:"appraiserName"`
	EmployeeID       string                  `json:"employeeId"`
	EmployeeName     string                  `json:"employeeName"`
	RelationshipType models.RelationshipType `json:"relationshipType"`
	TemplateID       string                  `json:"templateId"`
	Status           models.AssignmentStatus `json:"status"`
	AssignmentType   models.AssignmentType   `json:"assignmentType"`
	LinkToken        string                  `json:"linkToken,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	DueDate          *time.Time              `json:"dueDate,omitempty"`
}

type CreateAssignment struct {
	ReviewPeriodID   string                  `json:"reviewPeriodId"`
	AppraiserID      string                  `json:"appraiserId"`
	EmployeeID       string                  `json:"employeeId"`
	RelationshipType models.RelationshipType `json:"relationshipType"`
	TemplateID       string                  `json:"templateId"`
	DueDate          *time.Time              `json:"dueDate"`
}

func (r CreateAssignment) Validate() error {
	if r.AppraiserID == "" || r.EmployeeID == "" {
		return errors.New("не указана пара оценки")
	}
	if r.ReviewPeriodID == "" {
		return errors.New("не указан период оценки")
	}
	return nil
}

type AdvanceAssignment struct {
	Status models.AssignmentStatus `json:"status"`
}

func (r AdvanceAssignment) Validate() error {
	if r.Status == "" {
		return errors.New("не указан целевой статус назначения")
	}
	return nil
}

// PreviewRequest запрос предварительного расчета назначений по оргструктуре
type PreviewRequest struct {
	ReviewPeriodID  string                             `json:"reviewPeriodId"`
	LeaderToMember  bool                               `json:"leaderToMember"`
	MemberToLeader  bool                               `json:"memberToLeader"`
	LeaderToLeader  bool                               `json:"leaderToLeader"`
	ExecToLeader    bool                               `json:"execToLeader"`
	HRToAll         bool                               `json:"hrToAll"`
	TemplateMapping map[models.RelationshipType]string `json:"templateMapping"`
	DueDate         *time.Time                         `json:"dueDate"`
}

func (r PreviewRequest) Validate() error {
	if r.ReviewPeriodID == "" {
		return errors.New("не указан период оценки")
	}
	return nil
}

type PreviewResponse struct {
	Assignments []Assignment `json:"assignments"`
	Warnings    []string     `json:"warnings"`
}

type ConfirmRequest struct {
	Assignments []Assignment `json:"assignments"`
}

func (r ConfirmRequest) Validate() error {
	if len(r.Assignments) == 0 {
		return errors.New("список назначений пуст")
	}
	return nil
}
