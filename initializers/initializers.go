package initializers

import (
	"context"

	"appraisal-backend/config"
	"appraisal-backend/fiberlog"
	appraisalshandler "appraisal-backend/lib/appraisals"
	assignmentshandler "appraisal-backend/lib/assignments"
	authhandler "appraisal-backend/lib/auth"
	backuphandler "appraisal-backend/lib/backup"
	employeeshandler "appraisal-backend/lib/employees"
	"appraisal-backend/lib/eventbus"
	linkshandler "appraisal-backend/lib/links"
	periodshandler "appraisal-backend/lib/periods"
	settingshandler "appraisal-backend/lib/settings"
	summarieshandler "appraisal-backend/lib/summaries"
	teamshandler "appraisal-backend/lib/teams"
	templateshandler "appraisal-backend/lib/templates"
	usershandler "appraisal-backend/lib/users"
	connectionhub "appraisal-backend/lib/ws/hub"
)

var LoggerConfig *fiberlog.Config

// InitAllServices порядок важен: конфигурация и подключения первыми,
// шина событий до подписчиков, пользователи до сотрудников
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	eventbus.NewBus()
	connectionhub.Init()
	usershandler.NewHandler()
	employeeshandler.NewHandler()
	teamshandler.NewHandler()
	periodshandler.NewHandler()
	templateshandler.NewHandler()
	assignmentshandler.NewHandler()
	appraisalshandler.NewHandler()
	summarieshandler.NewHandler()
	linkshandler.NewHandler()
	settingshandler.NewHandler()
	authhandler.NewHandler()
	backuphandler.NewHandler()
	backuphandler.StartSnapshotWorker(ctx)
}
