package handlers

import (
	"net/http"

	"github.com/hello383/Sway/internal/services"
	"github.com/hello383/Sway/internal/services/dto"

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

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id/notify", h.NotifySubscribers)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": job})
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 0)
	offset := ParseQueryInt(c, "offset", 0)

	jobs, err := h.jobService.ListJobs(h.GetDB(c), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": jobs})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

// NotifySubscribers pushes the job alert to every email-tier subscriber and
// reports both tallies. Partial failure is still a 200.
func (h *JobHandler) NotifySubscribers(c *gin.Context) {
	resp, err := h.jobService.NotifySubscribers(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}
