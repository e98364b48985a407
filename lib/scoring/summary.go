package scoring

import (
	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"
)

// Summarize агрегат по завершенным оценкам сотрудника за период.
// Учитываются только оценки с проставленным completedAt, тип отношения
// берется из типа шаблона оценки.
func Summarize(employeeID, reviewPeriodID string, appraisals []dbmodels.Appraisal, templates []dbmodels.AppraisalTemplate) dbmodels.PerformanceSummary {
	templateTypes := make(map[string]models.RelationshipType, len(templates))
	for _, template := range templates {
		templateTypes[template.ID] = template.Type
	}

	summary := dbmodels.PerformanceSummary{
		EmployeeID:     employeeID,
		ReviewPeriodID: reviewPeriodID,
		CountByType:    map[models.RelationshipType]int{},
	}
	var percentSum float64
	for _, appraisal := range appraisals {
		if appraisal.EmployeeID != employeeID || appraisal.ReviewPeriodID != reviewPeriodID {
			continue
		}
		if !appraisal.IsCompleted() {
			continue
		}
		summary.AppraisalCount++
		percentSum += Percent(appraisal.Score, appraisal.MaxScore)
		if relType, exist := templateTypes[appraisal.TemplateID]; exist {
			summary.CountByType[relType]++
		}
	}
	if summary.AppraisalCount > 0 {
		summary.AveragePercent = percentSum / float64(summary.AppraisalCount)
	}
	return summary
}
