package periodshandler

import (
	"appraisal-backend/db"
	"appraisal-backend/lib/storage/syncstore"
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Provider interface {
	GetAll() ([]appraisalapimodels.ReviewPeriod, error)
	GetByID(periodID string) (*appraisalapimodels.ReviewPeriod, error)
	Save(model appraisalapimodels.ReviewPeriod) (appraisalapimodels.ReviewPeriod, error)
	Delete(periodID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.ReviewPeriod]("review_period", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.ReviewPeriod]
}

func (i impl) GetAll() ([]appraisalapimodels.ReviewPeriod, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]appraisalapimodels.ReviewPeriod, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(periodID string) (*appraisalapimodels.ReviewPeriod, error) {
	rec, err := i.store.GetByID(periodID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	model := rec.ToModel()
	return &model, nil
}

func (i impl) Save(model appraisalapimodels.ReviewPeriod) (appraisalapimodels.ReviewPeriod, error) {
	if err := model.Validate(); err != nil {
		return appraisalapimodels.ReviewPeriod{}, err
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	rec := dbmodels.ReviewPeriodFromModel(model)
	if err := rec.Validate(); err != nil {
		return appraisalapimodels.ReviewPeriod{}, err
	}
	if err := i.store.Save(rec); err != nil {
		return appraisalapimodels.ReviewPeriod{}, errors.Wrap(err, "ошибка сохранения периода оценки")
	}
	return rec.ToModel(), nil
}

func (i impl) Delete(periodID string) error {
	return i.store.Delete(periodID)
}
