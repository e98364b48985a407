package backupapimodels

import (
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	orgapimodels "appraisal-backend/models/api/org"

	"github.com/pkg/errors"
)

const SnapshotVersion = 1

// Snapshot полный срез всех сущностей для резервного копирования и восстановления
type Snapshot struct {
	Version       int                                      `json:"version"`
	Employees     []orgapimodels.Employee                  `json:"employees"`
	Teams         []orgapimodels.Team                      `json:"teams"`
	Templates     []appraisalapimodels.Template            `json:"templates"`
	Assignments   []appraisalapimodels.Assignment          `json:"assignments"`
	Appraisals    []appraisalapimodels.Appraisal           `json:"appraisals"`
	Links         []appraisalapimodels.Link                `json:"links"`
	ReviewPeriods []appraisalapimodels.ReviewPeriod        `json:"reviewPeriods"`
	Users         []User                                   `json:"users"`
	Settings      []Setting                                `json:"settings"`
	Summaries     []appraisalapimodels.PerformanceSummary  `json:"summaries"`
}

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
	Active     bool   `json:"active"`
}

type Setting struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (s Snapshot) Validate() error {
	if s.Version == 0 {
		return errors.New("не указана версия снимка данных")
	}
	if s.Version > SnapshotVersion {
		return errors.New("версия снимка данных новее поддерживаемой")
	}
	return nil
}
