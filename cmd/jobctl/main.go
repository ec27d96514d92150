// jobctl is a small operator CLI over the same core as the API: tabular
// reports of jobs, candidates, companies, and one candidate's history.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/records"
	"go-jobboard-backend/internal/store"
	"go-jobboard-backend/internal/usecase"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}

	recordStore := store.NewCSVStore(cfg.DataDir)
	companyRepo := records.NewCompanyRepository(recordStore)
	jobRepo := records.NewJobRepository(recordStore)
	candidateRepo := records.NewCandidateRepository(recordStore)
	applicationRepo := records.NewApplicationRepository(recordStore)

	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, applicationRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, applicationRepo, jobRepo, companyRepo)

	ctx := context.Background()

	switch os.Args[1] {
	case "jobs":
		err = showJobs(ctx, jobUC)
	case "candidates":
		err = showCandidates(ctx, candidateUC)
	case "companies":
		err = showCompanies(ctx, companyRepo)
	case "applications":
		if len(os.Args) < 3 {
			color.Red("Usage: jobctl applications <candidate_id>")
			os.Exit(2)
		}
		err = showApplications(ctx, candidateUC, os.Args[2])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: jobctl <jobs|candidates|companies|applications>")
	fmt.Println("  jobs                         all jobs with applicant counts")
	fmt.Println("  candidates                   all non-admin candidates")
	fmt.Println("  companies                    all companies")
	fmt.Println("  applications <candidate_id>  one candidate's history")
}

func showJobs(ctx context.Context, jobUC domain.JobUsecase) error {
	jobs, err := jobUC.ListAllJobs(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Title < jobs[j].Title })

	color.Yellow("\nJobs (%d)", len(jobs))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Job ID", "Title", "Company", "Status", "Deadline", "Applicants"})
	for _, job := range jobs {
		table.Append([]string{
			job.ID, job.Title, job.CompanyName, job.Status,
			job.Deadline.String(), fmt.Sprintf("%d", job.ApplicantCount),
		})
	}
	table.Render()
	return nil
}

func showCandidates(ctx context.Context, candidateUC domain.CandidateUsecase) error {
	candidates, err := candidateUC.ListCandidates(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].FirstName < candidates[j].FirstName })

	color.Yellow("\nCandidates (%d)", len(candidates))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Candidate ID", "First Name", "Last Name", "Email"})
	for _, c := range candidates {
		table.Append([]string{c.ID, c.FirstName, c.LastName, c.Email})
	}
	table.Render()
	return nil
}

func showCompanies(ctx context.Context, companyRepo domain.CompanyRepository) error {
	companies, err := companyRepo.Fetch(ctx)
	if err != nil {
		return err
	}

	color.Yellow("\nCompanies (%d)", len(companies))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Company ID", "Name", "Location"})
	for _, c := range companies {
		table.Append([]string{c.ID, c.Name, c.Location})
	}
	table.Render()
	return nil
}

func showApplications(ctx context.Context, candidateUC domain.CandidateUsecase, candidateID string) error {
	candidate, err := candidateUC.GetCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	applications, err := candidateUC.ListApplications(ctx, candidateID)
	if err != nil {
		return err
	}
	sort.SliceStable(applications, func(i, j int) bool {
		return applications[j].ApplicationDate.Before(applications[i].ApplicationDate)
	})

	color.Cyan("\n%s %s <%s>", candidate.FirstName, candidate.LastName, candidate.Email)
	color.Yellow("Applications (%d) as of %s", len(applications), time.Now().Format(time.DateOnly))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Job Title", "Company", "Applied On"})
	for _, app := range applications {
		table.Append([]string{app.JobTitle, app.CompanyName, app.ApplicationDate.String()})
	}
	table.Render()
	return nil
}
