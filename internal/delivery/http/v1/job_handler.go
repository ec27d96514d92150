package v1

import (
	"errors"
	"net/http"
	"sort"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, applicationUC: applicationUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.ListOpen)
		jobs.GET("/:id", handler.GetDetails)
	}
}

// ListOpen godoc
// @Summary      List open jobs
// @Description  Open job postings with company name and applicant count
// @Tags         jobs
// @Produce      json
// @Param        sort_by  query  string  false  "Sort key: title (default), company, deadline"
// @Success      200  {object}  response.Response{data=[]domain.JobWithDetails}
// @Router       /jobs [get]
func (h *JobHandler) ListOpen(c *gin.Context) {
	jobs, err := h.jobUC.ListOpenJobs(c)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	sortJobs(jobs, c.DefaultQuery("sort_by", "title"))
	response.Success(c, http.StatusOK, "Open jobs retrieved", jobs)
}

// GetDetails godoc
// @Summary      Get job details
// @Description  One job with company name and location. When the caller presents an identity, already_applied is included.
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Job posting not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	alreadyApplied := false
	if candidateID := c.GetString(string(domain.KeyCandidateID)); candidateID != "" && !c.GetBool(string(domain.KeyIsAdmin)) {
		alreadyApplied, err = h.applicationUC.HasApplied(c, candidateID, job.ID)
		if err != nil {
			c.Error(apperror.Internal(err))
			return
		}
	}

	response.Success(c, http.StatusOK, "Job details retrieved", gin.H{
		"job":             job,
		"already_applied": alreadyApplied,
	})
}

// sortJobs orders a details listing by the caller's sort key. The core
// returns storage order; ordering is presentation-side.
func sortJobs(jobs []domain.JobWithDetails, sortBy string) {
	switch sortBy {
	case "company":
		sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].CompanyName < jobs[j].CompanyName })
	case "deadline":
		sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Deadline.Before(jobs[j].Deadline) })
	case "applicants":
		sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].ApplicantCount > jobs[j].ApplicantCount })
	default:
		sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Title < jobs[j].Title })
	}
}
