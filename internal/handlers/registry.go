package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ProfileHandler   *ProfileHandler
	JobHandler       *JobHandler
	StartupHandler   *StartupHandler
	MeetingHandler   *MeetingHandler
	DashboardHandler *DashboardHandler
}
