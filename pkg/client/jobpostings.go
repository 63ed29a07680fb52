package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// JobPosting mirrors the posting payload of the service
type JobPosting struct {
	ID                      string          `json:"id"`
	JobTitle                string          `json:"jobTitle"`
	JobDescription          string          `json:"jobDescription"`
	City                    string          `json:"city"`
	Country                 string          `json:"country"`
	WorkingType             string          `json:"workingType"`
	EmploymentType          string          `json:"employmentType"`
	MinSalary               decimal.Decimal `json:"minSalary"`
	MaxSalary               decimal.Decimal `json:"maxSalary"`
	RequiredSkills          string          `json:"requiredSkills"`
	RequiredExperienceYears int             `json:"requiredExperienceYears"`
	RequiredEnglishLevel    string          `json:"requiredEnglishLevel"`
	Closed                  bool            `json:"closed"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// JobPostingDraft is the body of create and edit calls. ID is only set when
// editing.
type JobPostingDraft struct {
	ID                      string          `json:"id,omitempty"`
	JobTitle                string          `json:"jobTitle"`
	JobDescription          string          `json:"jobDescription"`
	City                    string          `json:"city"`
	Country                 string          `json:"country"`
	WorkingType             string          `json:"workingType"`
	EmploymentType          string          `json:"employmentType"`
	MinSalary               decimal.Decimal `json:"minSalary"`
	MaxSalary               decimal.Decimal `json:"maxSalary"`
	RequiredSkills          string          `json:"requiredSkills"`
	RequiredExperienceYears int             `json:"requiredExperienceYears"`
	RequiredEnglishLevel    string          `json:"requiredEnglishLevel,omitempty"`
}

// PageQuery selects a page of a list endpoint
type PageQuery struct {
	Page int
	Size int
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	return v
}

// JobPostings lists postings, optionally filtered by closed status. The
// endpoint is public.
func (c *Client) JobPostings(ctx context.Context, closed *bool, page PageQuery) (Page[JobPosting], error) {
	query := page.values()
	if closed != nil {
		query.Set("closed", strconv.FormatBool(*closed))
	}

	var result Page[JobPosting]
	err := c.do(ctx, http.MethodGet, "/jobPosting/all", query, nil, &result, "")
	return result, err
}

// JobPosting fetches one posting by id. The endpoint is public.
func (c *Client) JobPosting(ctx context.Context, id string) (JobPosting, error) {
	query := url.Values{"jobPostingId": {id}}

	var result JobPosting
	err := c.do(ctx, http.MethodGet, "/jobPosting/getJobPosting", query, nil, &result, "")
	return result, err
}

// SearchJobPostings filters postings by title substring, staff only
func (p *Private) SearchJobPostings(ctx context.Context, jobTitle string, page PageQuery) (Page[JobPosting], error) {
	query := page.values()
	query.Set("jobTitle", jobTitle)

	var result Page[JobPosting]
	err := p.do(ctx, http.MethodGet, "/jobPosting/searchByJobTitle", query, nil, &result)
	return result, err
}

func (p *Private) CreateJobPosting(ctx context.Context, draft JobPostingDraft) (JobPosting, error) {
	var result JobPosting
	err := p.do(ctx, http.MethodPost, "/jobPosting/create", nil, draft, &result)
	return result, err
}

func (p *Private) EditJobPosting(ctx context.Context, draft JobPostingDraft) (JobPosting, error) {
	var result JobPosting
	err := p.do(ctx, http.MethodPut, "/jobPosting/edit", nil, draft, &result)
	return result, err
}

// ChangeJobPostingStatus opens or closes a posting
func (p *Private) ChangeJobPostingStatus(ctx context.Context, id string, closed bool) (JobPosting, error) {
	query := url.Values{
		"jobPostingId": {id},
		"closed":       {strconv.FormatBool(closed)},
	}

	var result JobPosting
	err := p.do(ctx, http.MethodPatch, "/jobPosting/changeStatus", query, nil, &result)
	return result, err
}
