package dto

import (
	"networknode/internal/completion"
	"networknode/internal/models"
)

// DashboardResponse - главная страница дашборда
type DashboardResponse struct {
	LatestJobs     []models.Job      `json:"latest_jobs"`
	LatestStartups []models.Startup  `json:"latest_startups"`
	Completion     completion.Status `json:"completion"`
}
