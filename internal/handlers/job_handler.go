package handlers

import (
	"net/http"

	"networknode/internal/services"
	"networknode/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(dashboard *gin.RouterGroup) {
	jobs := dashboard.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("/new", h.CreateJob)
	}
}

// ListJobs godoc
// @Summary Вакансии, новые первыми
// @Tags jobs
// @Produce json
// @Param page query int false "Страница"
// @Param page_size query int false "Размер страницы"
// @Success 200 {object} dto.PaginatedResponse
// @Router /dashboard/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.jobService.ListJobs(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateJob godoc
// @Summary Разместить вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Вакансия"
// @Success 201 {object} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /dashboard/jobs/new [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindBody(c, &req) {
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}
