package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Application statuses
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// Application is one job application with its matching scores
type Application struct {
	ID              string    `json:"id"`
	JobPostingID    string    `json:"jobPostingId"`
	Status          string    `json:"status"`
	ApplicationDate time.Time `json:"applicationDate"`

	EnglishScore              int `json:"englishScore"`
	SkillsScore               int `json:"skillsScore"`
	EducationScore            int `json:"educationScore"`
	ExperienceYearsScore      int `json:"experienceYearsScore"`
	ExperienceSimilarityScore int `json:"experienceSimilarityScore"`
	GeneralScore              int `json:"generalScore"`
}

// ApplicationRow is an application joined with the applicant and posting
// fields the review screens show
type ApplicationRow struct {
	Application
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	JobTitle  string `json:"jobTitle"`
	JobClosed bool   `json:"jobClosed"`
}

// Apply submits an application for a posting, applicant only. Scores are
// computed server side from the profile at application time.
func (p *Private) Apply(ctx context.Context, jobPostingID string) (Application, error) {
	query := url.Values{"jobPostingId": {jobPostingID}}

	var result Application
	err := p.do(ctx, http.MethodPost, "/jobApplication/apply", query, nil, &result)
	return result, err
}

// MyApplications pages the session user's own applications
func (p *Private) MyApplications(ctx context.Context, page PageQuery) (Page[ApplicationRow], error) {
	var result Page[ApplicationRow]
	err := p.do(ctx, http.MethodGet, "/jobApplication/myApplicationFilter", page.values(), nil, &result)
	return result, err
}

// ApplicationFilter narrows the staff application listing. Zero values mean
// no filtering on that field.
type ApplicationFilter struct {
	FullName         string
	JobTitle         string
	Status           string
	Closed           *bool
	ApplicantID      string
	JobApplicationID string
}

func (f ApplicationFilter) values(page PageQuery) url.Values {
	query := page.values()
	if f.FullName != "" {
		query.Set("fullName", f.FullName)
	}
	if f.JobTitle != "" {
		query.Set("jobTitle", f.JobTitle)
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.Closed != nil {
		query.Set("closed", strconv.FormatBool(*f.Closed))
	}
	if f.ApplicantID != "" {
		query.Set("userId", f.ApplicantID)
	}
	if f.JobApplicationID != "" {
		query.Set("jobApplicationId", f.JobApplicationID)
	}
	return query
}

// Applications pages applications across all applicants, staff only
func (p *Private) Applications(ctx context.Context, filter ApplicationFilter, page PageQuery) (Page[ApplicationRow], error) {
	var result Page[ApplicationRow]
	err := p.do(ctx, http.MethodGet, "/jobApplication/anyApplicationFilter", filter.values(page), nil, &result)
	return result, err
}

// ChangeApplicationStatus moves an application to a decision status, staff
// only. PENDING is not a valid target.
func (p *Private) ChangeApplicationStatus(ctx context.Context, id string, status string) (Application, error) {
	query := url.Values{
		"jobApplicationId": {id},
		"status":           {status},
	}

	var result Application
	err := p.do(ctx, http.MethodPatch, "/jobApplication/changeStatus", query, nil, &result)
	return result, err
}
