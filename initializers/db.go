package initializers

import (
	"appraisal-backend/config"
	"appraisal-backend/db"

	log "github.com/sirupsen/logrus"
)

func InitDBConnection() {
	err := db.ConnectLocal(config.Conf.LocalCache.Path)
	if err != nil {
		panic(err.Error())
	}

	err = db.ConnectRemote(config.Conf.Remote.Host, config.Conf.Remote.Port, config.Conf.Remote.Name,
		config.Conf.Remote.User, config.Conf.Remote.Password, *config.Conf.Remote.DebugMode, *config.Conf.Remote.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	// недоступность внешней БД на старте не фатальна, сервис продолжает на кэше
	if config.Conf.RemoteConfigured() {
		if err = db.PingRemote(); err != nil {
			log.WithError(err).Warn("внешняя БД не отвечает, операции пойдут через локальный кэш")
		}
	}
}
