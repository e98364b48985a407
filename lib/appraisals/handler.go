package appraisalshandler

import (
	"time"

	assignmentshandler "appraisal-backend/lib/assignments"
	"appraisal-backend/db"
	"appraisal-backend/lib/eventbus"
	"appraisal-backend/lib/scoring"
	"appraisal-backend/lib/storage/syncstore"
	summarieshandler "appraisal-backend/lib/summaries"
	templateshandler "appraisal-backend/lib/templates"
	"appraisal-backend/models"
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetAll() ([]appraisalapimodels.Appraisal, error)
	GetByID(appraisalID string) (*appraisalapimodels.Appraisal, error)
	GetByEmployee(employeeID string) ([]appraisalapimodels.Appraisal, error)
	// Submit прием заполненной формы: подсчет балла, фиксация завершения,
	// перевод назначения в completed и пересчет агрегата
	Submit(request appraisalapimodels.SubmitAppraisal) (appraisalapimodels.Appraisal, error)
	Store() syncstore.Provider[dbmodels.Appraisal]
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.Appraisal]("appraisal", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.Appraisal]
}

func (i impl) Store() syncstore.Provider[dbmodels.Appraisal] {
	return i.store
}

func (i impl) GetAll() ([]appraisalapimodels.Appraisal, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]appraisalapimodels.Appraisal, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(appraisalID string) (*appraisalapimodels.Appraisal, error) {
	rec, err := i.store.GetByID(appraisalID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	model := rec.ToModel()
	return &model, nil
}

func (i impl) GetByEmployee(employeeID string) ([]appraisalapimodels.Appraisal, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := []appraisalapimodels.Appraisal{}
	for _, rec := range records {
		if rec.EmployeeID == employeeID {
			list = append(list, rec.ToModel())
		}
	}
	return list, nil
}

func (i impl) Submit(request appraisalapimodels.SubmitAppraisal) (appraisalapimodels.Appraisal, error) {
	if err := request.Validate(); err != nil {
		return appraisalapimodels.Appraisal{}, err
	}
	template, err := templateshandler.Instance.GetRecordByID(request.TemplateID)
	if err != nil {
		return appraisalapimodels.Appraisal{}, err
	}
	if template == nil {
		return appraisalapimodels.Appraisal{}, errors.New("шаблон оценки не найден")
	}

	responses := make([]dbmodels.AppraisalResponse, 0, len(request.Responses))
	for _, response := range request.Responses {
		responses = append(responses, dbmodels.AppraisalResponse{
			QuestionID: response.QuestionID,
			Value:      response.Value,
		})
	}
	earned, possible := scoring.Score(*template, responses)
	now := time.Now()
	rec := dbmodels.Appraisal{
		BaseModel:      dbmodels.BaseModel{ID: uuid.NewString(), CreatedAt: now},
		TemplateID:     request.TemplateID,
		EmployeeID:     request.EmployeeID,
		AppraiserID:    request.AppraiserID,
		ReviewPeriodID: request.ReviewPeriodID,
		Responses:      responses,
		Score:          earned,
		MaxScore:       possible,
		CompletedAt:    &now, // после отправки момент завершения не меняется
	}
	if err = i.store.Save(rec); err != nil {
		log.WithError(err).Error("ошибка сохранения оценки")
		return appraisalapimodels.Appraisal{}, err
	}

	if request.AssignmentID != "" {
		if err = assignmentshandler.Instance.Advance(request.AssignmentID, models.AssignmentStatusCompleted); err != nil {
			log.
				WithField("assignment_id", request.AssignmentID).
				WithError(err).
				Error("ошибка перевода назначения в завершенный статус")
		}
	}

	// пересчет агрегата - независимая операция, рассогласование устраняется при следующем пересчете
	appraisals, err := i.store.GetAll()
	if err == nil {
		if err = summarieshandler.Instance.Refresh(rec.EmployeeID, rec.ReviewPeriodID, appraisals); err != nil {
			log.
				WithField("employee_id", rec.EmployeeID).
				WithError(err).
				Error("ошибка пересчета агрегата по оценкам")
		}
	}

	eventbus.Instance.Publish(eventbus.TopicAppraisalSubmitted, rec.ToModel())
	return rec.ToModel(), nil
}
