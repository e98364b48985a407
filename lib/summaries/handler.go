package summarieshandler

import (
	"appraisal-backend/db"
	"appraisal-backend/lib/scoring"
	"appraisal-backend/lib/storage/syncstore"
	templateshandler "appraisal-backend/lib/templates"
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Provider interface {
	GetAll() ([]appraisalapimodels.PerformanceSummary, error)
	GetByEmployee(employeeID string) ([]appraisalapimodels.PerformanceSummary, error)
	// Refresh пересчет агрегата по всем завершенным оценкам сотрудника за период
	Refresh(employeeID, reviewPeriodID string, appraisals []dbmodels.Appraisal) error
	Store() syncstore.Provider[dbmodels.PerformanceSummary]
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.PerformanceSummary]("performance_summary", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.PerformanceSummary]
}

func (i impl) Store() syncstore.Provider[dbmodels.PerformanceSummary] {
	return i.store
}

func (i impl) GetAll() ([]appraisalapimodels.PerformanceSummary, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]appraisalapimodels.PerformanceSummary, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByEmployee(employeeID string) ([]appraisalapimodels.PerformanceSummary, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := []appraisalapimodels.PerformanceSummary{}
	for _, rec := range records {
		if rec.EmployeeID == employeeID {
			list = append(list, rec.ToModel())
		}
	}
	return list, nil
}

func (i impl) Refresh(employeeID, reviewPeriodID string, appraisals []dbmodels.Appraisal) error {
	templates, err := templateshandler.Instance.GetAllRecords()
	if err != nil {
		return errors.Wrap(err, "ошибка получения шаблонов для пересчета агрегата")
	}
	summary := scoring.Summarize(employeeID, reviewPeriodID, appraisals, templates)

	// у пары сотрудник-период не больше одного агрегата, id переиспользуется
	existing, err := i.store.GetAll()
	if err != nil {
		return err
	}
	summary.ID = uuid.NewString()
	for _, rec := range existing {
		if rec.EmployeeID == employeeID && rec.ReviewPeriodID == reviewPeriodID {
			summary.BaseModel = rec.BaseModel
			break
		}
	}
	return i.store.Save(summary)
}
