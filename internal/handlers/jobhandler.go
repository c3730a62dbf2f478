package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobfinder/search-service/internal/dtos"
	"jobfinder/search-service/internal/services"
)

// JobHandler exposes the job search endpoint.
type JobHandler struct {
	jobs *services.JobService
}

// NewJobHandler creates the handler with its dependencies.
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// SearchJobs is the GET /jobs endpoint. Validation failures are the only
// client-visible errors here; upstream trouble surfaces as an empty array.
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var req dtos.JobSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs := h.jobs.Search(c.Request.Context(), &req)
	c.JSON(http.StatusOK, jobs)
}
