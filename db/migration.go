package db

import (
	dbmodels "appraisal-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AutoMigrate миграции только аддитивные: новые таблицы и индексы добавляются,
// существующие данные не разрушаются; повторный запуск безопасен
func AutoMigrate(database *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := database.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := database.AutoMigrate(&dbmodels.Team{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Team")
	}
	if err := database.AutoMigrate(&dbmodels.AppraisalTemplate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AppraisalTemplate")
	}
	if err := database.AutoMigrate(&dbmodels.AppraisalAssignment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AppraisalAssignment")
	}
	if err := database.AutoMigrate(&dbmodels.AppraisalLink{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AppraisalLink")
	}
	if err := database.AutoMigrate(&dbmodels.Appraisal{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Appraisal")
	}
	if err := database.AutoMigrate(&dbmodels.ReviewPeriod{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ReviewPeriod")
	}
	if err := database.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := database.AutoMigrate(&dbmodels.AppSetting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AppSetting")
	}
	if err := database.AutoMigrate(&dbmodels.PerformanceSummary{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PerformanceSummary")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
