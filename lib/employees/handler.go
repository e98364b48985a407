package employeeshandler

import (
	"appraisal-backend/db"
	"appraisal-backend/lib/eventbus"
	"appraisal-backend/lib/storage/syncstore"
	usershandler "appraisal-backend/lib/users"
	dbmodels "appraisal-backend/models/db"
	orgapimodels "appraisal-backend/models/api/org"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetAll() ([]orgapimodels.Employee, error)
	// GetActive сотрудники без блокирующих статусов, основа для оргструктуры
	GetActive() ([]orgapimodels.Employee, error)
	GetByID(employeeID string) (*orgapimodels.Employee, error)
	Create(request orgapimodels.CreateEmployee) (orgapimodels.CreateEmployeeResponse, error)
	Update(employeeID string, request orgapimodels.CreateEmployee) error
	Delete(employeeID string) error
	GetActiveRecords() ([]dbmodels.Employee, error)
	Store() syncstore.Provider[dbmodels.Employee]
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.Employee]("employee", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.Employee]
}

func (i impl) Store() syncstore.Provider[dbmodels.Employee] {
	return i.store
}

func (i impl) GetAll() ([]orgapimodels.Employee, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]orgapimodels.Employee, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetActive() ([]orgapimodels.Employee, error) {
	records, err := i.GetActiveRecords()
	if err != nil {
		return nil, err
	}
	list := make([]orgapimodels.Employee, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetActiveRecords() ([]dbmodels.Employee, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	active := make([]dbmodels.Employee, 0, len(records))
	for _, rec := range records {
		if rec.IsActive() {
			active = append(active, rec)
		}
	}
	return active, nil
}

func (i impl) GetByID(employeeID string) (*orgapimodels.Employee, error) {
	rec, err := i.store.GetByID(employeeID)
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка поиска сотрудника")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	model := rec.ToModel()
	return &model, nil
}

func (i impl) Create(request orgapimodels.CreateEmployee) (orgapimodels.CreateEmployeeResponse, error) {
	rec := dbmodels.Employee{
		BaseModel:           dbmodels.BaseModel{ID: uuid.NewString()},
		Name:                request.Name,
		Email:               request.Email,
		Role:                request.Role,
		Hierarchy:           request.Hierarchy,
		ExecutiveType:       request.ExecutiveType,
		TeamID:              request.TeamID,
		ReportsTo:           request.ReportsTo,
		DottedLineReportsTo: request.DottedLineReportsTo,
		EmploymentStatus:    request.EmploymentStatus,
	}
	if err := rec.Validate(); err != nil {
		return orgapimodels.CreateEmployeeResponse{}, err
	}
	if err := i.store.Save(rec); err != nil {
		log.WithError(err).Error("ошибка создания сотрудника")
		return orgapimodels.CreateEmployeeResponse{}, err
	}
	response := orgapimodels.CreateEmployeeResponse{Employee: rec.ToModel()}
	if request.CreateUserAccount {
		password := uuid.NewString()[:8]
		user, err := usershandler.Instance.CreateForEmployee(rec, password)
		if err != nil {
			return response, errors.Wrap(err, "сотрудник создан, но учетная запись не создана")
		}
		response.Username = user.Username
		response.TemporaryPassword = password
	}
	eventbus.Instance.Publish(eventbus.TopicEmployeeCreated, rec.ToModel())
	return response, nil
}

func (i impl) Update(employeeID string, request orgapimodels.CreateEmployee) error {
	existing, err := i.store.GetByID(employeeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("сотрудник не найден")
	}
	rec := dbmodels.Employee{
		BaseModel:           existing.BaseModel,
		Name:                request.Name,
		Email:               request.Email,
		Role:                request.Role,
		Hierarchy:           request.Hierarchy,
		ExecutiveType:       request.ExecutiveType,
		TeamID:              request.TeamID,
		ReportsTo:           request.ReportsTo,
		DottedLineReportsTo: request.DottedLineReportsTo,
		EmploymentStatus:    request.EmploymentStatus,
	}
	if err = rec.Validate(); err != nil {
		return err
	}
	if err = i.store.Save(rec); err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка обновления сотрудника")
		return err
	}
	// блокировка учетной записи - независимая операция, её сбой не откатывает обновление
	if !existing.EmploymentStatus.IsLocking() && rec.EmploymentStatus.IsLocking() {
		if err = usershandler.Instance.DeactivateByEmployee(employeeID); err != nil {
			log.
				WithField("employee_id", employeeID).
				WithError(err).
				Error("ошибка блокировки учетной записи сотрудника")
		}
	}
	eventbus.Instance.Publish(eventbus.TopicEmployeeUpdated, rec.ToModel())
	return nil
}

func (i impl) Delete(employeeID string) error {
	if err := i.store.Delete(employeeID); err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка удаления сотрудника")
		return err
	}
	// отвязка учетной записи - независимая операция, рассогласование устраняется при следующем чтении
	if err := usershandler.Instance.UnlinkByEmployee(employeeID); err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка отвязки учетной записи удаленного сотрудника")
	}
	eventbus.Instance.Publish(eventbus.TopicEmployeeDeleted, employeeID)
	return nil
}
