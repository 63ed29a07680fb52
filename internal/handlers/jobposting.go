package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codepioneers/recruiting/internal/handlers/render"
	"github.com/codepioneers/recruiting/internal/models"
)

type jobPostingService interface {
	Create(ctx context.Context, posting models.JobPosting) (models.JobPosting, error)
	Edit(ctx context.Context, posting models.JobPosting) (models.JobPosting, error)
	Get(ctx context.Context, id uuid.UUID) (models.JobPosting, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, closed bool) (models.JobPosting, error)
	List(ctx context.Context, closed *bool, page models.PageRequest) (models.Page[models.JobPosting], error)
	SearchByTitle(ctx context.Context, title string, page models.PageRequest) (models.Page[models.JobPosting], error)
}

type JobPostingHandler struct {
	postings jobPostingService
}

func NewJobPosting(postings jobPostingService) *JobPostingHandler {
	return &JobPostingHandler{postings: postings}
}

type JobPostingResponse struct {
	ID                      uuid.UUID       `json:"id"`
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

func postingResponse(p models.JobPosting) JobPostingResponse {
	return JobPostingResponse{
		ID:                      p.ID,
		JobTitle:                p.JobTitle,
		JobDescription:          p.JobDescription,
		City:                    p.City,
		Country:                 p.Country,
		WorkingType:             string(p.WorkingType),
		EmploymentType:          string(p.EmploymentType),
		MinSalary:               p.MinSalary,
		MaxSalary:               p.MaxSalary,
		RequiredSkills:          p.RequiredSkills,
		RequiredExperienceYears: p.RequiredExperienceYears,
		RequiredEnglishLevel:    string(p.RequiredEnglishLevel),
		Closed:                  p.Closed,
		CreatedAt:               p.CreatedAt,
	}
}

type jobPostingRequest struct {
	ID                      uuid.UUID       `json:"id"`
	JobTitle                string          `json:"jobTitle" validate:"required"`
	JobDescription          string          `json:"jobDescription"`
	City                    string          `json:"city"`
	Country                 string          `json:"country"`
	WorkingType             string          `json:"workingType" validate:"required,oneof=ONSITE REMOTE HYBRID"`
	EmploymentType          string          `json:"employmentType" validate:"required,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT FREELANCE VOLUNTEER APPRENTICESHIP"`
	MinSalary               decimal.Decimal `json:"minSalary"`
	MaxSalary               decimal.Decimal `json:"maxSalary"`
	RequiredSkills          string          `json:"requiredSkills"`
	RequiredExperienceYears int             `json:"requiredExperienceYears" validate:"min=0"`
	RequiredEnglishLevel    string          `json:"requiredEnglishLevel" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
}

func (req jobPostingRequest) toModel(createdBy uuid.UUID) models.JobPosting {
	return models.JobPosting{
		ID:                      req.ID,
		CreatedBy:               createdBy,
		JobTitle:                req.JobTitle,
		JobDescription:          req.JobDescription,
		City:                    req.City,
		Country:                 req.Country,
		WorkingType:             models.WorkingType(req.WorkingType),
		EmploymentType:          models.EmploymentType(req.EmploymentType),
		MinSalary:               req.MinSalary,
		MaxSalary:               req.MaxSalary,
		RequiredSkills:          req.RequiredSkills,
		RequiredExperienceYears: req.RequiredExperienceYears,
		RequiredEnglishLevel:    models.EnglishLevel(req.RequiredEnglishLevel),
	}
}

func (h *JobPostingHandler) all(w http.ResponseWriter, r *http.Request) {
	var closed *bool
	if v := r.URL.Query().Get("closed"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
			return
		}
		closed = &parsed
	}

	page, err := h.postings.List(r.Context(), closed, pageRequest(r))
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, pageResponse(page, postingResponse))
}

func (h *JobPostingHandler) searchByTitle(w http.ResponseWriter, r *http.Request) {
	page, err := h.postings.SearchByTitle(r.Context(), r.URL.Query().Get("jobTitle"), pageRequest(r))
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, pageResponse(page, postingResponse))
}

func (h *JobPostingHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "jobPostingId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	posting, err := h.postings.Get(r.Context(), id)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, postingResponse(posting))
}

func (h *JobPostingHandler) create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[jobPostingRequest](w, r)
	if err != nil {
		return
	}

	created, err := h.postings.Create(r.Context(), data.toModel(viewer.ID))
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, postingResponse(created), http.StatusCreated)
}

func (h *JobPostingHandler) edit(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[jobPostingRequest](w, r)
	if err != nil {
		return
	}
	if data.ID == uuid.Nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.postings.Edit(r.Context(), data.toModel(viewer.ID))
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, postingResponse(updated))
}

func (h *JobPostingHandler) changeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "jobPostingId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	closed, err := strconv.ParseBool(r.URL.Query().Get("closed"))
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.postings.ChangeStatus(r.Context(), id, closed)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, postingResponse(updated))
}

func uuidQuery(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.URL.Query().Get(name))
}
