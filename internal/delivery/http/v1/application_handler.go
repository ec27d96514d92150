package v1

import (
	"net/http"
	"sort"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	candidateUC   domain.CandidateUsecase
}

func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, candidateUC domain.CandidateUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC, candidateUC: candidateUC}

	r.POST("/jobs/:id/apply", handler.Apply)
	r.GET("/me/applications", handler.ListMine)
}

// Apply godoc
// @Summary      Apply for a job
// @Description  Submit an application for the identified candidate. Rejected when the job is missing, the deadline has passed, or the candidate already applied.
// @Tags         applications
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Param        X-Candidate-ID  header  string  true  "Caller identity"
// @Success      201  {object}  response.Response{data=domain.SubmitResult}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	// Admins are not candidates and cannot apply.
	if c.GetBool(string(domain.KeyIsAdmin)) {
		c.Error(apperror.Forbidden("Administrators cannot apply for jobs"))
		return
	}
	candidateID := c.GetString(string(domain.KeyCandidateID))

	result, err := h.applicationUC.SubmitApplication(c, c.Param("id"), candidateID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if result.Success {
		response.Success(c, http.StatusCreated, result.Message, result)
		return
	}
	response.Error(c, submitStatus(result.Outcome), result.Message, result)
}

// ListMine godoc
// @Summary      List my applications
// @Description  Application history of the identified candidate
// @Tags         applications
// @Produce      json
// @Param        X-Candidate-ID  header  string  true  "Caller identity"
// @Param        sort_by  query  string  false  "Sort key: job_title (default), company_name, application_date"
// @Success      200  {object}  response.Response{data=[]domain.ApplicationSummary}
// @Router       /me/applications [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyCandidateID))

	applications, err := h.candidateUC.ListApplications(c, candidateID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	sortApplications(applications, c.DefaultQuery("sort_by", "job_title"))
	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

func submitStatus(outcome string) int {
	switch outcome {
	case domain.SubmitOutcomeJobNotFound:
		return http.StatusNotFound
	case domain.SubmitOutcomeAlreadyApplied:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func sortApplications(apps []domain.ApplicationSummary, sortBy string) {
	switch sortBy {
	case "company_name":
		sort.SliceStable(apps, func(i, j int) bool { return apps[i].CompanyName < apps[j].CompanyName })
	case "application_date":
		// Most recent first
		sort.SliceStable(apps, func(i, j int) bool { return apps[j].ApplicationDate.Before(apps[i].ApplicationDate) })
	default:
		sort.SliceStable(apps, func(i, j int) bool { return apps[i].JobTitle < apps[j].JobTitle })
	}
}
