package settingshandler

import (
	"appraisal-backend/db"
	"appraisal-backend/lib/storage/syncstore"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
)

type Provider interface {
	GetAll() ([]dbmodels.AppSetting, error)
	GetByKey(key string) (*dbmodels.AppSetting, error)
	Set(key, value string) error
	Store() syncstore.Provider[dbmodels.AppSetting]
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.AppSetting]("app_setting", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.AppSetting]
}

func (i impl) Store() syncstore.Provider[dbmodels.AppSetting] {
	return i.store
}

func (i impl) GetAll() ([]dbmodels.AppSetting, error) {
	return i.store.GetAll()
}

func (i impl) GetByKey(key string) (*dbmodels.AppSetting, error) {
	return i.store.GetByField("key", key)
}

func (i impl) Set(key, value string) error {
	existing, err := i.GetByKey(key)
	if err != nil {
		return err
	}
	rec := dbmodels.AppSetting{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		Key:       key,
		Value:     value,
	}
	if existing != nil {
		rec.BaseModel = existing.BaseModel
	}
	return i.store.Save(rec)
}
