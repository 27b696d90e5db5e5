package services

import "networknode/internal/completion"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	ProfileService   ProfileService
	JobService       JobService
	StartupService   StartupService
	MeetingService   MeetingService
	DashboardService DashboardService
	EmailService     *EmailService

	// Checker - кэширующая проверка заполненности, общая для гейта и сервисов
	Checker *completion.CachedChecker
}
