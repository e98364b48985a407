package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	// Remote внешняя авторитетная БД, опциональна: пустой Host означает работу только с локальным кэшем
	Remote struct {
		Host           string `default:"" env:"REMOTE_DB_HOST"`
		Port           string `default:"5432" env:"REMOTE_DB_PORT"`
		Name           string `default:"appraisal" env:"REMOTE_DB_NAME"`
		User           string `default:"postgres" env:"REMOTE_DB_USER"`
		Password       string `default:"postgres" env:"REMOTE_DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"REMOTE_DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"REMOTE_DB_DEBUG_MODE"`
	}
	LocalCache struct {
		Path string `default:"appraisal-cache.db" env:"LOCAL_CACHE_PATH"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"AUTH_JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		LinkDomain string `default:"http://localhost:8000" env:"SMTP_LINK_DOMAIN"`
	}
	Backup struct {
		UploadIntervalMin int `default:"0" env:"BACKUP_UPLOAD_INTERVAL_MIN"` // 0 отключает периодическую выгрузку
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"appraisal-backups" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
	}
}

// RemoteConfigured внешняя БД считается настроенной только при заполненном адресе
func (c Configuration) RemoteConfigured() bool {
	return c.Remote.Host != ""
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
