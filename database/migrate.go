package database

import (
	"context"
	"fmt"
	"time"

	"networknode/internal/logger"
	"networknode/internal/models"

	"gorm.io/gorm"
)

// Models - все таблицы приложения в порядке миграции
func Models() []interface{} {
	return []interface{}{
		&models.Profile{},
		&models.Job{},
		&models.Startup{},
		&models.MeetingRequest{},
	}
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	start := time.Now()

	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	logger.Info("auto migrate completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
