package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/handlers/render"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
)

type applicationService interface {
	Apply(ctx context.Context, applicantID uuid.UUID, jobPostingID uuid.UUID) (models.JobApplication, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (models.JobApplication, error)
	MyApplications(ctx context.Context, applicantID uuid.UUID, page models.PageRequest) (models.Page[models.ApplicationRow], error)
	Filter(ctx context.Context, filter repository.ApplicationFilter, page models.PageRequest) (models.Page[models.ApplicationRow], error)
}

type ApplicationHandler struct {
	applications applicationService
}

func NewApplication(applications applicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type ScoreResponse struct {
	EnglishScore              int `json:"englishScore"`
	SkillsScore               int `json:"skillsScore"`
	EducationScore            int `json:"educationScore"`
	ExperienceYearsScore      int `json:"experienceYearsScore"`
	ExperienceSimilarityScore int `json:"experienceSimilarityScore"`
	GeneralScore              int `json:"generalScore"`
}

func scoreResponse(s models.Score) ScoreResponse {
	return ScoreResponse{
		EnglishScore:              s.English,
		SkillsScore:               s.Skills,
		EducationScore:            s.Education,
		ExperienceYearsScore:      s.ExperienceYears,
		ExperienceSimilarityScore: s.ExperienceSimilarity,
		GeneralScore:              s.General,
	}
}

type ApplicationResponse struct {
	ID              uuid.UUID `json:"id"`
	JobPostingID    uuid.UUID `json:"jobPostingId"`
	Status          string    `json:"status"`
	ApplicationDate time.Time `json:"applicationDate"`
	ScoreResponse
}

func applicationResponse(a models.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		JobPostingID:    a.JobPostingID,
		Status:          string(a.Status),
		ApplicationDate: a.ApplicationDate,
		ScoreResponse:   scoreResponse(a.Score),
	}
}

// ApplicationRowResponse adds the joined applicant and posting fields the
// review screens show
type ApplicationRowResponse struct {
	ApplicationResponse
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	JobTitle  string `json:"jobTitle"`
	JobClosed bool   `json:"jobClosed"`
}

func applicationRowResponse(row models.ApplicationRow) ApplicationRowResponse {
	return ApplicationRowResponse{
		ApplicationResponse: applicationResponse(row.JobApplication),
		FullName:            row.FullName,
		Email:               row.Email,
		JobTitle:            row.JobTitle,
		JobClosed:           row.JobClosed,
	}
}

func (h *ApplicationHandler) apply(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	jobPostingID, err := uuidQuery(r, "jobPostingId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	created, err := h.applications.Apply(r.Context(), viewer.ID, jobPostingID)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, applicationResponse(created), http.StatusCreated)
}

func (h *ApplicationHandler) myApplications(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	page, err := h.applications.MyApplications(r.Context(), viewer.ID, pageRequest(r))
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, pageResponse(page, applicationRowResponse))
}

func (h *ApplicationHandler) anyApplications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.ApplicationFilter{
		FullName: query.Get("fullName"),
		JobTitle: query.Get("jobTitle"),
		Status:   models.ApplicationStatus(query.Get("status")),
	}

	if filter.Status != "" && !filter.Status.Valid() {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	if v := query.Get("closed"); v != "" {
		closed, err := strconv.ParseBool(v)
		if err != nil {
			render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
			return
		}
		filter.Closed = &closed
	}

	if v := query.Get("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
			return
		}
		filter.ApplicantID = id
	}

	if v := query.Get("jobApplicationId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
			return
		}
		filter.JobApplicationID = id
	}

	page, err := h.applications.Filter(r.Context(), filter, pageRequest(r))
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, pageResponse(page, applicationRowResponse))
}

func (h *ApplicationHandler) changeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "jobApplicationId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	status := models.ApplicationStatus(r.URL.Query().Get("status"))
	if !status.Valid() || status == models.ApplicationPending {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.applications.ChangeStatus(r.Context(), id, status)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, applicationResponse(updated))
}
