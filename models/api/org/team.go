package orgapimodels

import "github.com/pkg/errors"

type Team struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	OversightExecutiveID string   `json:"oversightExecutiveId,omitempty"`
	LeaderIDs            []string `json:"leaderIds,omitempty"`
}

type CreateTeam struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	OversightExecutiveID string   `json:"oversightExecutiveId"`
	LeaderIDs            []string `json:"leaderIds"`
}

func (r CreateTeam) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название команды")
	}
	return nil
}
