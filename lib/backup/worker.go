package backuphandler

import (
	"context"
	"runtime/debug"
	"time"

	"appraisal-backend/config"

	log "github.com/sirupsen/logrus"
)

// StartSnapshotWorker периодическая выгрузка снимка данных в S3.
// Запускается только при настроенном хранилище, живет до отмены контекста.
func StartSnapshotWorker(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		return
	}
	interval := time.Duration(config.Conf.Backup.UploadIntervalMin) * time.Minute
	if interval <= 0 {
		return
	}
	go run(ctx, interval)
}

func run(ctx context.Context, interval time.Duration) {
	logger := log.WithField("worker_name", "snapshot-upload")
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-time.After(interval):
			logger.Info("Задача запущена")
			if err := Instance.UploadSnapshot(ctx); err != nil {
				logger.WithError(err).Error("ошибка периодической выгрузки снимка")
			}
			logger.Info("Задача выполнена")
		}
	}
}
