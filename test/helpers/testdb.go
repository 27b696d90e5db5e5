package helpers

import (
	"context"
	"strings"
	"testing"

	"networknode/database"
	"networknode/internal/logger"
	"networknode/internal/models"

	"gorm.io/gorm"
)

// NewTestDB открывает отдельную in-memory sqlite базу на тест и мигрирует схему
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Init("test")

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(database.DriverSQLite, "file:"+name+"?mode=memory&cache=shared", "test")
	if err != nil {
		t.Fatalf("не удалось открыть тестовую БД: %v", err)
	}
	if err := database.AutoMigrate(context.Background(), db); err != nil {
		t.Fatalf("не удалось выполнить миграцию тестовой БД: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateProfile создает профиль участника. Пустые поля остаются пустыми.
func CreateProfile(t *testing.T, db *gorm.DB, p models.Profile) models.Profile {
	t.Helper()
	if p.Email == "" {
		p.Email = p.ID + "@example.com"
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("не удалось создать профиль %s: %v", p.ID, err)
	}
	return p
}

// CreateCompleteProfile создает профиль, который проходит проверку заполненности
func CreateCompleteProfile(t *testing.T, db *gorm.DB, id, name string) models.Profile {
	t.Helper()
	return CreateProfile(t, db, models.Profile{
		ID:              id,
		Name:            name,
		DiscordUsername: name + "#0001",
		WhatsappNumber:  "5551234",
	})
}

// CreateStartup создает стартап владельца
func CreateStartup(t *testing.T, db *gorm.DB, ownerID, title string) models.Startup {
	t.Helper()
	s := models.Startup{
		UserID:       ownerID,
		Title:        title,
		Description:  "We build things",
		HiringStatus: models.HiringStatusNotHiring,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("не удалось создать стартап: %v", err)
	}
	return s
}
