package templateshandler

import (
	"appraisal-backend/db"
	"appraisal-backend/lib/storage/syncstore"
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Provider interface {
	GetAll() ([]appraisalapimodels.Template, error)
	GetByID(templateID string) (*appraisalapimodels.Template, error)
	GetRecordByID(templateID string) (*dbmodels.AppraisalTemplate, error)
	GetAllRecords() ([]dbmodels.AppraisalTemplate, error)
	Save(model appraisalapimodels.Template) (appraisalapimodels.Template, error)
	Delete(templateID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.AppraisalTemplate]("appraisal_template", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.AppraisalTemplate]
}

func (i impl) GetAll() ([]appraisalapimodels.Template, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]appraisalapimodels.Template, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetAllRecords() ([]dbmodels.AppraisalTemplate, error) {
	return i.store.GetAll()
}

func (i impl) GetByID(templateID string) (*appraisalapimodels.Template, error) {
	rec, err := i.store.GetByID(templateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	model := rec.ToModel()
	return &model, nil
}

func (i impl) GetRecordByID(templateID string) (*dbmodels.AppraisalTemplate, error) {
	return i.store.GetByID(templateID)
}

func (i impl) Save(model appraisalapimodels.Template) (appraisalapimodels.Template, error) {
	if err := model.Validate(); err != nil {
		return appraisalapimodels.Template{}, err
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	rec := dbmodels.TemplateFromModel(model)
	if err := i.store.Save(rec); err != nil {
		return appraisalapimodels.Template{}, errors.Wrap(err, "ошибка сохранения шаблона оценки")
	}
	return rec.ToModel(), nil
}

func (i impl) Delete(templateID string) error {
	return i.store.Delete(templateID)
}
