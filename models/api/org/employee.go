package orgapimodels

import (
	"appraisal-backend/models"

	"github.com/pkg/errors"
)

type Employee struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Email               string                  `json:"email,omitempty"`
	Role                string                  `json:"role,omitempty"`
	Hierarchy           models.Hierarchy        `json:"hierarchy"`
	ExecutiveType       models.ExecutiveType    `json:"executiveType,omitempty"`
	TeamID              string                  `json:"teamId,omitempty"`
	ReportsTo           string                  `json:"reportsTo,omitempty"`
	DottedLineReportsTo []string                `json:"dottedLineReportsTo,omitempty"`
	EmploymentStatus    models.EmploymentStatus `json:"employmentStatus,omitempty"`
}

type CreateEmployee struct {
	Name                string                  `json:"name"`
	Email               string                  `json:"email"`
	Role                string                  `json:"role"`
	Hierarchy           models.Hierarchy        `json:"hierarchy"`
	ExecutiveType       models.ExecutiveType    `json:"executiveType"`
	TeamID              string                  `json:"teamId"`
	ReportsTo           string                  `json:"reportsTo"`
	DottedLineReportsTo []string                `json:"dottedLineReportsTo"`
	EmploymentStatus    models.EmploymentStatus `json:"employmentStatus"`
	CreateUserAccount   bool                    `json:"createUserAccount"`
}

type CreateEmployeeResponse struct {
	Employee          Employee `json:"employee"`
	Username          string   `json:"username,omitempty"`
	TemporaryPassword string   `json:"temporaryPassword,omitempty"`
}

func (r CreateEmployee) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя сотрудника")
	}
	if r.Hierarchy == "" {
		return errors.New("не указан уровень иерархии сотрудника")
	}
	return nil
}
