package db

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Remote внешняя авторитетная БД, nil если не настроена
var Remote *gorm.DB

// Local локальный кэш, существует всегда
var Local *gorm.DB

var localOnce sync.Once

// ConnectRemote подключение к внешней БД; отсутствие настроек не является ошибкой
func ConnectRemote(host, port, database, user, pass string, debugMode, migrate bool) error {
	if host == "" {
		log.Info("Внешняя БД не настроена, сервис работает только с локальным кэшем")
		return nil
	}
	if Remote != nil {
		return nil
	}
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	remote, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "ошибка подключения к внешней БД")
	}
	if debugMode {
		remote.Logger = logger.Default.LogMode(logger.Info)
		Remote = remote.Debug()
	} else {
		Remote = remote
	}
	if migrate {
		if err = AutoMigrate(Remote); err != nil {
			return err
		}
	}
	log.Info("Сервис успешно подключен к внешней БД")
	return nil
}

// ConnectLocal открытие локального кэша, физическое открытие происходит ровно один раз
func ConnectLocal(path string) (err error) {
	localOnce.Do(func() {
		var local *gorm.DB
		local, err = gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: gorm_logrus.New(),
		})
		if err != nil {
			err = errors.Wrap(err, "ошибка открытия локального кэша")
			return
		}
		Local = local
		err = AutoMigrate(Local)
		if err == nil {
			log.Info("Локальный кэш успешно открыт")
		}
	})
	if err == nil && Local == nil {
		return errors.New("локальный кэш не был открыт")
	}
	return err
}

func PingRemote() error {
	if Remote == nil {
		return errors.New("внешняя БД не настроена")
	}
	sqlDB, err := Remote.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
