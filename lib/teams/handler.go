package teamshandler

import (
	"appraisal-backend/db"
	employeeshandler "appraisal-backend/lib/employees"
	"appraisal-backend/lib/storage/syncstore"
	orgapimodels "appraisal-backend/models/api/org"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetAll() ([]orgapimodels.Team, error)
	GetByID(teamID string) (*orgapimodels.Team, error)
	Create(request orgapimodels.CreateTeam) (orgapimodels.Team, error)
	Update(teamID string, request orgapimodels.CreateTeam) error
	Delete(teamID string) error
	// GetLeaders руководители команды определяются сканом сотрудников:
	// совпадение teamId и иерархия руководителя подразделения или высшего звена
	GetLeaders(teamID string) ([]orgapimodels.Employee, error)
	Store() syncstore.Provider[dbmodels.Team]
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.Team]("team", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.Team]
}

func (i impl) Store() syncstore.Provider[dbmodels.Team] {
	return i.store
}

func (i impl) GetAll() ([]orgapimodels.Team, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]orgapimodels.Team, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(teamID string) (*orgapimodels.Team, error) {
	rec, err := i.store.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	model := rec.ToModel()
	return &model, nil
}

func (i impl) Create(request orgapimodels.CreateTeam) (orgapimodels.Team, error) {
	rec := dbmodels.Team{
		BaseModel:            dbmodels.BaseModel{ID: uuid.NewString()},
		Name:                 request.Name,
		Description:          request.Description,
		OversightExecutiveID: request.OversightExecutiveID,
		LeaderIDs:            request.LeaderIDs,
	}
	if err := rec.Validate(); err != nil {
		return orgapimodels.Team{}, err
	}
	if err := i.store.Save(rec); err != nil {
		log.WithError(err).Error("ошибка создания команды")
		return orgapimodels.Team{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) Update(teamID string, request orgapimodels.CreateTeam) error {
	existing, err := i.store.GetByID(teamID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("команда не найдена")
	}
	rec := dbmodels.Team{
		BaseModel:            existing.BaseModel,
		Name:                 request.Name,
		Description:          request.Description,
		OversightExecutiveID: request.OversightExecutiveID,
		LeaderIDs:            request.LeaderIDs,
	}
	if err = rec.Validate(); err != nil {
		return err
	}
	return i.store.Save(rec)
}

func (i impl) Delete(teamID string) error {
	// ссылки teamId у сотрудников не чистятся: висячая ссылка трактуется как отсутствие команды
	return i.store.Delete(teamID)
}

func (i impl) GetLeaders(teamID string) ([]orgapimodels.Employee, error) {
	employees, err := employeeshandler.Instance.GetActiveRecords()
	if err != nil {
		return nil, err
	}
	leaders := []orgapimodels.Employee{}
	for _, e := range employees {
		if e.TeamID != teamID {
			continue
		}
		if e.Hierarchy.IsDepartmentLeader() || e.Hierarchy.IsExecutive() {
			leaders = append(leaders, e.ToModel())
		}
	}
	return leaders, nil
}
