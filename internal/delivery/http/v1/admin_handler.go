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

type AdminHandler struct {
	candidateUC domain.CandidateUsecase
	jobUC       domain.JobUsecase
}

// NewAdminHandler registers the admin views. The group is expected to be
// guarded by RequireAdmin.
func NewAdminHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, jobUC domain.JobUsecase) {
	handler := &AdminHandler{candidateUC: candidateUC, jobUC: jobUC}

	r.GET("/candidates", handler.ListCandidates)
	r.GET("/candidates/:id", handler.GetCandidate)
	r.GET("/jobs", handler.ListJobs)
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  Every non-admin candidate, sorted by first name
// @Tags         admin
// @Produce      json
// @Param        X-Candidate-ID  header  string  true  "Admin identity"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      403  {object}  response.Response
// @Router       /admin/candidates [get]
func (h *AdminHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].FirstName < candidates[j].FirstName })
	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

// GetCandidate godoc
// @Summary      Get candidate details
// @Description  One candidate plus their application history
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Candidate ID"
// @Param        X-Candidate-ID  header  string  true  "Admin identity"
// @Param        sort_by  query  string  false  "History sort key: job_title (default), company_name, application_date"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id} [get]
func (h *AdminHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Candidate not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	applications, err := h.candidateUC.ListApplications(c, candidate.ID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	sortApplications(applications, c.DefaultQuery("sort_by", "job_title"))

	response.Success(c, http.StatusOK, "Candidate details retrieved", gin.H{
		"candidate":    candidate,
		"applications": applications,
	})
}

// ListJobs godoc
// @Summary      List all jobs
// @Description  Every job regardless of status, with company name and applicant count
// @Tags         admin
// @Produce      json
// @Param        X-Candidate-ID  header  string  true  "Admin identity"
// @Param        sort_by  query  string  false  "Sort key: title (default), company, applicants"
// @Success      200  {object}  response.Response{data=[]domain.JobWithDetails}
// @Failure      403  {object}  response.Response
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListAllJobs(c)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	sortJobs(jobs, c.DefaultQuery("sort_by", "title"))
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}
