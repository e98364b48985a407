package dbmodels

import "github.com/pkg/errors"

type Team struct {
	BaseModel
	Name                 string   `gorm:"type:varchar(255)"`
	Description          string   `gorm:"type:text"`
	OversightExecutiveID string   `gorm:"type:varchar(36);index"`
	LeaderIDs            []string `gorm:"serializer:json"`
}

func (t Team) Validate() error {
	if t.Name == "" {
		return errors.New("не указано название команды")
	}
	return nil
}
