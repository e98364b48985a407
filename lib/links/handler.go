package linkshandler

import (
	"fmt"
	"strings"
	"time"

	"appraisal-backend/config"
	"appraisal-backend/db"
	employeeshandler "appraisal-backend/lib/employees"
	"appraisal-backend/lib/smtp"
	"appraisal-backend/lib/storage/syncstore"
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetAll() ([]appraisalapimodels.Link, error)
	Create(request appraisalapimodels.CreateLink) (appraisalapimodels.Link, error)
	GetByToken(token string) (*appraisalapimodels.Link, error)
	// Consume одноразовое использование: used переключается в true ровно один раз
	Consume(token string) (appraisalapimodels.Link, error)
	Delete(linkID string) error
	Store() syncstore.Provider[dbmodels.AppraisalLink]
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.AppraisalLink]("appraisal_link", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.AppraisalLink]
}

func (i impl) Store() syncstore.Provider[dbmodels.AppraisalLink] {
	return i.store
}

func (i impl) GetAll() ([]appraisalapimodels.Link, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]appraisalapimodels.Link, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Create(request appraisalapimodels.CreateLink) (appraisalapimodels.Link, error) {
	if err := request.Validate(); err != nil {
		return appraisalapimodels.Link{}, err
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	rec := dbmodels.AppraisalLink{
		BaseModel:      dbmodels.BaseModel{ID: uuid.NewString()},
		Token:          token,
		AppraiserID:    request.AppraiserID,
		EmployeeID:     request.EmployeeID,
		TemplateID:     request.TemplateID,
		ReviewPeriodID: request.ReviewPeriodID,
	}
	if err := rec.Validate(); err != nil {
		return appraisalapimodels.Link{}, err
	}
	if err := i.store.Save(rec); err != nil {
		log.WithError(err).Error("ошибка сохранения приглашения на оценку")
		return appraisalapimodels.Link{}, err
	}
	i.sendInvitation(rec, request.SendTo)
	return rec.ToModel(), nil
}

func (i impl) GetByToken(token string) (*appraisalapimodels.Link, error) {
	rec, err := i.store.GetByField("token", token)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	model := rec.ToModel()
	return &model, nil
}

func (i impl) Consume(token string) (appraisalapimodels.Link, error) {
	rec, err := i.store.GetByField("token", token)
	if err != nil {
		return appraisalapimodels.Link{}, err
	}
	if rec == nil {
		return appraisalapimodels.Link{}, errors.New("приглашение не найдено")
	}
	if rec.Used {
		return appraisalapimodels.Link{}, errors.New("приглашение уже использовано")
	}
	now := time.Now()
	rec.Used = true
	rec.UsedAt = &now
	if err = i.store.Save(*rec); err != nil {
		return appraisalapimodels.Link{}, errors.Wrap(err, "ошибка отметки приглашения использованным")
	}
	return rec.ToModel(), nil
}

func (i impl) Delete(linkID string) error {
	return i.store.Delete(linkID)
}

// sendInvitation отправка приглашения - необязательный шаг, сбой не отменяет создание
func (i impl) sendInvitation(rec dbmodels.AppraisalLink, sendTo string) {
	if sendTo == "" || smtp.Instance == nil || !smtp.Instance.IsConfigured() {
		return
	}
	subject := "Приглашение на оценку"
	link := fmt.Sprintf("%s/appraise/%s", config.Conf.Smtp.LinkDomain, rec.Token)
	message := fmt.Sprintf("Вам назначена оценка сотрудника. Перейдите по ссылке для заполнения формы: %s", link)
	if employee, err := employeeshandler.Instance.GetByID(rec.EmployeeID); err == nil && employee != nil {
		message = fmt.Sprintf("Вам назначена оценка сотрудника %s. Перейдите по ссылке для заполнения формы: %s", employee.Name, link)
	}
	if err := smtp.Instance.SendEMail(config.Conf.Smtp.User, sendTo, message, subject); err != nil {
		log.
			WithField("link_id", rec.ID).
			WithError(err).
			Error("ошибка отправки приглашения на оценку")
	}
}
