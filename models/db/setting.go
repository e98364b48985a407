package dbmodels

import "github.com/pkg/errors"

type AppSetting struct {
	BaseModel
	Key   string `gorm:"type:varchar(255);uniqueIndex:idx_app_setting_key"`
	Value string `gorm:"type:text"`
}

func (s AppSetting) Validate() error {
	if s.Key == "" {
		return errors.New("не указан ключ настройки")
	}
	return nil
}
