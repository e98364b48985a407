package backuphandler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appraisalshandler "appraisal-backend/lib/appraisals"
	assignmentshandler "appraisal-backend/lib/assignments"
	employeeshandler "appraisal-backend/lib/employees"
	linkshandler "appraisal-backend/lib/links"
	periodshandler "appraisal-backend/lib/periods"
	settingshandler "appraisal-backend/lib/settings"
	summarieshandler "appraisal-backend/lib/summaries"
	teamshandler "appraisal-backend/lib/teams"
	templateshandler "appraisal-backend/lib/templates"
	usershandler "appraisal-backend/lib/users"
	"appraisal-backend/models"
	backupapimodels "appraisal-backend/models/api/backup"
	dbmodels "appraisal-backend/models/db"
	s3client "appraisal-backend/s3"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Export сериализуемый срез всех сущностей с меткой версии
	Export() (backupapimodels.Snapshot, error)
	// Import сквозная запись каждой сущности снимка через слой синхронизации
	Import(snapshot backupapimodels.Snapshot) error
	// UploadSnapshot выгрузка снимка в S3, если хранилище настроено
	UploadSnapshot(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Export() (backupapimodels.Snapshot, error) {
	snapshot := backupapimodels.Snapshot{Version: backupapimodels.SnapshotVersion}
	var err error
	if snapshot.Employees, err = employeeshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки сотрудников")
	}
	if snapshot.Teams, err = teamshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки команд")
	}
	if snapshot.Templates, err = templateshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки шаблонов")
	}
	if snapshot.Assignments, err = assignmentshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки назначений")
	}
	if snapshot.Appraisals, err = appraisalshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки оценок")
	}
	if snapshot.Links, err = linkshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки приглашений")
	}
	if snapshot.ReviewPeriods, err = periodshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки периодов оценки")
	}
	users, err := usershandler.Instance.GetAll()
	if err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки пользователей")
	}
	snapshot.Users = make([]backupapimodels.User, 0, len(users))
	for _, user := range users {
		snapshot.Users = append(snapshot.Users, backupapimodels.User{
			ID:         user.ID,
			Username:   user.Username,
			Password:   user.Password,
			Role:       string(user.Role),
			EmployeeID: user.EmployeeID,
			Active:     user.Active,
		})
	}
	settings, err := settingshandler.Instance.GetAll()
	if err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки настроек")
	}
	snapshot.Settings = make([]backupapimodels.Setting, 0, len(settings))
	for _, setting := range settings {
		snapshot.Settings = append(snapshot.Settings, backupapimodels.Setting{
			ID:    setting.ID,
			Key:   setting.Key,
			Value: setting.Value,
		})
	}
	if snapshot.Summaries, err = summarieshandler.Instance.GetAll(); err != nil {
		return snapshot, errors.Wrap(err, "ошибка выгрузки агрегатов")
	}
	return snapshot, nil
}

func (i impl) Import(snapshot backupapimodels.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	for _, model := range snapshot.Employees {
		if err := employeeshandler.Instance.Store().Save(dbmodels.EmployeeFromModel(model)); err != nil {
			return errors.Wrap(err, "ошибка импорта сотрудника")
		}
	}
	for _, model := range snapshot.Teams {
		if err := teamshandler.Instance.Store().Save(dbmodels.TeamFromModel(model)); err != nil {
			return errors.Wrap(err, "ошибка импорта команды")
		}
	}
	for _, model := range snapshot.Templates {
		if _, err := templateshandler.Instance.Save(model); err != nil {
			return errors.Wrap(err, "ошибка импорта шаблона")
		}
	}
	for _, model := range snapshot.ReviewPeriods {
		if _, err := periodshandler.Instance.Save(model); err != nil {
			return errors.Wrap(err, "ошибка импорта периода оценки")
		}
	}
	for _, model := range snapshot.Assignments {
		if err := assignmentshandler.Instance.Store().Save(dbmodels.AssignmentFromModel(model)); err != nil {
			return errors.Wrap(err, "ошибка импорта назначения")
		}
	}
	for _, model := range snapshot.Appraisals {
		if err := appraisalshandler.Instance.Store().Save(dbmodels.AppraisalFromModel(model)); err != nil {
			return errors.Wrap(err, "ошибка импорта оценки")
		}
	}
	for _, model := range snapshot.Links {
		if err := linkshandler.Instance.Store().Save(dbmodels.LinkFromModel(model)); err != nil {
			return errors.Wrap(err, "ошибка импорта приглашения")
		}
	}
	for _, user := range snapshot.Users {
		rec := dbmodels.User{
			BaseModel:  dbmodels.BaseModel{ID: user.ID},
			Username:   user.Username,
			Password:   user.Password,
			Role:       models.UserRole(user.Role),
			EmployeeID: user.EmployeeID,
			Active:     user.Active,
		}
		if err := usershandler.Instance.Save(rec); err != nil {
			return errors.Wrap(err, "ошибка импорта пользователя")
		}
	}
	for _, setting := range snapshot.Settings {
		if err := settingshandler.Instance.Set(setting.Key, setting.Value); err != nil {
			return errors.Wrap(err, "ошибка импорта настройки")
		}
	}
	for _, model := range snapshot.Summaries {
		if err := summarieshandler.Instance.Store().Save(dbmodels.SummaryFromModel(model)); err != nil {
			return errors.Wrap(err, "ошибка импорта агрегата")
		}
	}
	return nil
}

func (i impl) UploadSnapshot(ctx context.Context) error {
	if s3client.Client == nil {
		return errors.New("хранилище S3 не настроено")
	}
	snapshot, err := i.Export()
	if err != nil {
		return err
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации снимка")
	}
	objectName := fmt.Sprintf("snapshot-%s.json", time.Now().Format("20060102-150405"))
	if err = s3client.NewClient(s3client.Client).UploadSnapshot(ctx, objectName, payload); err != nil {
		return errors.Wrap(err, "ошибка выгрузки снимка в S3")
	}
	log.WithField("object", objectName).Info("снимок данных выгружен в S3")
	return nil
}
