package resolution

import (
	"time"

	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
)

// порядок обхода категорий фиксирован для воспроизводимости результата
var relationshipOrder = []models.RelationshipType{
	models.RelationshipLeaderToMember,
	models.RelationshipMemberToLeader,
	models.RelationshipLeaderToLeader,
	models.RelationshipExecToLeader,
	models.RelationshipHRToAll,
}

// BuildAssignments превращает рассчитанные пары в назначения оценки.
// Побочных эффектов нет, сохранение выполняет вызывающий.
func BuildAssignments(res Result, templateMapping map[models.RelationshipType]string, reviewPeriodID string, dueDate *time.Time) []dbmodels.AppraisalAssignment {
	assignments := []dbmodels.AppraisalAssignment{}
	now := time.Now()
	for _, relType := range relationshipOrder {
		pairs, exist := res.Pairs[relType]
		if !exist {
			continue
		}
		for _, pair := range pairs {
			assignments = append(assignments, dbmodels.AppraisalAssignment{
				BaseModel: dbmodels.BaseModel{
					ID:        uuid.NewString(),
					CreatedAt: now,
				},
				ReviewPeriodID:   reviewPeriodID,
				AppraiserID:      pair.AppraiserID,
				AppraiserName:    pair.AppraiserName,
				EmployeeID:       pair.EmployeeID,
				EmployeeName:     pair.EmployeeName,
				RelationshipType: relType,
				TemplateID:       templateMapping[relType],
				Status:           models.AssignmentStatusPending,
				AssignmentType:   models.AssignmentTypeAuto,
				DueDate:          dueDate,
			})
		}
	}
	return assignments
}
