package dbmodels

import "appraisal-backend/models"

// PerformanceSummary агрегат по завершенным оценкам сотрудника за период
type PerformanceSummary struct {
	BaseModel
	EmployeeID     string                           `gorm:"type:varchar(36);index"`
	ReviewPeriodID string                           `gorm:"type:varchar(36);index"`
	AveragePercent float64                          // средний процент по завершенным оценкам
	AppraisalCount int                              // количество завершенных оценок
	CountByType    map[models.RelationshipType]int `gorm:"serializer:json"`
}
