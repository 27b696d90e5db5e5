package completion

import (
	"context"
	"errors"

	"networknode/internal/logger"
	"networknode/internal/models"

	"gorm.io/gorm"
)

var ErrNoProfile = errors.New("completion: profile row not found")

// ProfileSource читает только нужные для проверки колонки профиля
type ProfileSource interface {
	FindCompletionFields(db *gorm.DB, userID string, columns []string) (*models.Profile, error)
}

// Checker - контракт проверки профиля
type Checker interface {
	Check(ctx context.Context, userID string) Status
}

// ProfileChecker читает профиль из хранилища и применяет правила
type ProfileChecker struct {
	db     *gorm.DB
	source ProfileSource
	rules  []FieldRule
}

func NewProfileChecker(db *gorm.DB, source ProfileSource, rules []FieldRule) *ProfileChecker {
	if rules == nil {
		rules = RequiredProfileFields
	}
	return &ProfileChecker{db: db, source: source, rules: rules}
}

func (c *ProfileChecker) Rules() []FieldRule {
	return c.rules
}

// Check никогда не считает профиль заполненным при ошибке чтения:
// возвращается "не заполнен" с полным списком обязательных полей.
func (c *ProfileChecker) Check(ctx context.Context, userID string) Status {
	status, err := c.CheckErr(ctx, userID)
	if err != nil {
		logger.CtxWarn(ctx, "profile completion check failed, treating as incomplete",
			"user_id", userID, "error", err)
	}
	return status
}

// CheckErr - то же, что Check, но отдает причину сбоя вызывающему
func (c *ProfileChecker) CheckErr(ctx context.Context, userID string) (Status, error) {
	if userID == "" {
		return Incomplete(c.rules), ErrNoProfile
	}

	db := c.db
	if db != nil {
		db = db.WithContext(ctx)
	}

	p, err := c.source.FindCompletionFields(db, userID, Columns(c.rules))
	if err != nil {
		return Incomplete(c.rules), err
	}
	if p == nil {
		return Incomplete(c.rules), ErrNoProfile
	}
	return Evaluate(p, c.rules), nil
}
