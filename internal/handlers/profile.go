package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/handlers/render"
	"github.com/codepioneers/recruiting/internal/models"
)

type profileService interface {
	CreateWorkExperience(ctx context.Context, owner models.User, exp models.WorkExperience) (models.WorkExperience, error)
	EditWorkExperience(ctx context.Context, viewer models.User, exp models.WorkExperience) (models.WorkExperience, error)
	DeleteWorkExperience(ctx context.Context, viewer models.User, id uuid.UUID) error
	GetWorkExperience(ctx context.Context, viewer models.User, id uuid.UUID) (models.WorkExperience, error)
	ListWorkExperiences(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.WorkExperience, error)

	CreateEducation(ctx context.Context, owner models.User, edu models.Education) (models.Education, error)
	EditEducation(ctx context.Context, viewer models.User, edu models.Education) (models.Education, error)
	DeleteEducation(ctx context.Context, viewer models.User, id uuid.UUID) error
	GetEducation(ctx context.Context, viewer models.User, id uuid.UUID) (models.Education, error)
	ListEducations(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.Education, error)

	CreateSkill(ctx context.Context, owner models.User, skill models.Skill) (models.Skill, error)
	EditSkill(ctx context.Context, viewer models.User, skill models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, viewer models.User, id uuid.UUID) error
	GetSkill(ctx context.Context, viewer models.User, id uuid.UUID) (models.Skill, error)
	ListSkills(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.Skill, error)

	CreateProject(ctx context.Context, owner models.User, project models.Project) (models.Project, error)
	EditProject(ctx context.Context, viewer models.User, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, viewer models.User, id uuid.UUID) error
	GetProject(ctx context.Context, viewer models.User, id uuid.UUID) (models.Project, error)
	ListProjects(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.Project, error)

	CreateEnglishLevel(ctx context.Context, owner models.User, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error)
	EditEnglishLevel(ctx context.Context, viewer models.User, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error)
	DeleteEnglishLevel(ctx context.Context, viewer models.User, id uuid.UUID) error
	GetEnglishLevel(ctx context.Context, viewer models.User, id uuid.UUID) (models.ApplicantEnglishLevel, error)
	ListEnglishLevels(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.ApplicantEnglishLevel, error)
}

type ProfileHandler struct {
	profile profileService
}

func NewProfile(profile profileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// listOwner resolves the profile owner of a list request: the userId query
// param when present, the viewer otherwise
func listOwner(r *http.Request, viewer models.User) (uuid.UUID, error) {
	v := r.URL.Query().Get("userId")
	if v == "" {
		return viewer.ID, nil
	}
	return uuid.Parse(v)
}

type DeleteResponse struct {
	Message string `json:"message"`
}

// Work experiences

type WorkExperienceResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	JobTitle       string    `json:"jobTitle"`
	CompanyName    string    `json:"companyName"`
	EmploymentType string    `json:"employmentType"`
	Description    string    `json:"description"`
	StartDate      Date      `json:"startDate"`
	EndDate        *Date     `json:"endDate,omitempty"`
	Finished       bool      `json:"finished"`
}

func workExperienceResponse(e models.WorkExperience) WorkExperienceResponse {
	return WorkExperienceResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		JobTitle:       e.JobTitle,
		CompanyName:    e.CompanyName,
		EmploymentType: string(e.EmploymentType),
		Description:    e.Description,
		StartDate:      Date{e.StartDate},
		EndDate:        datePtr(e.EndDate),
		Finished:       e.Finished,
	}
}

type workExperienceRequest struct {
	ID             uuid.UUID `json:"id"`
	JobTitle       string    `json:"jobTitle" validate:"required"`
	CompanyName    string    `json:"companyName" validate:"required"`
	EmploymentType string    `json:"employmentType" validate:"required,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT FREELANCE VOLUNTEER APPRENTICESHIP"`
	Description    string    `json:"description"`
	StartDate      Date      `json:"startDate" validate:"required"`
	EndDate        *Date     `json:"endDate"`
	Finished       bool      `json:"finished"`
}

func (req workExperienceRequest) toModel() models.WorkExperience {
	return models.WorkExperience{
		ID:             req.ID,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		EmploymentType: models.EmploymentType(req.EmploymentType),
		Description:    req.Description,
		StartDate:      req.StartDate.Time,
		EndDate:        timePtr(req.EndDate),
		Finished:       req.Finished,
	}
}

func (h *ProfileHandler) createWorkExperience(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[workExperienceRequest](w, r)
	if err != nil {
		return
	}

	created, err := h.profile.CreateWorkExperience(r.Context(), viewer, data.toModel())
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, workExperienceResponse(created), http.StatusCreated)
}

func (h *ProfileHandler) editWorkExperience(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[workExperienceRequest](w, r)
	if err != nil {
		return
	}
	if data.ID == uuid.Nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.profile.EditWorkExperience(r.Context(), viewer, data.toModel())
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, workExperienceResponse(updated))
}

func (h *ProfileHandler) deleteWorkExperience(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "workExperienceId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	if err := h.profile.DeleteWorkExperience(r.Context(), viewer, id); err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, DeleteResponse{Message: "Work experience deleted"})
}

func (h *ProfileHandler) getWorkExperience(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "workExperienceId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	exp, err := h.profile.GetWorkExperience(r.Context(), viewer, id)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, workExperienceResponse(exp))
}

func (h *ProfileHandler) listWorkExperiences(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	owner, err := listOwner(r, viewer)
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	exps, err := h.profile.ListWorkExperiences(r.Context(), viewer, owner)
	if err != nil {
		renderError(w, err)
		return
	}

	response := make([]WorkExperienceResponse, 0, len(exps))
	for _, e := range exps {
		response = append(response, workExperienceResponse(e))
	}
	render.JSON(w, response)
}

// Educations

type EducationResponse struct {
	ID                      uuid.UUID `json:"id"`
	UserID                  uuid.UUID `json:"userId"`
	EducationLevel          string    `json:"educationLevel"`
	FieldOfStudy            string    `json:"fieldOfStudy"`
	Institution             string    `json:"institution"`
	AchievementsDescription string    `json:"achievementsDescription"`
	StartedDate             Date      `json:"startedDate"`
	GraduationDate          *Date     `json:"graduationDate,omitempty"`
	Finished                bool      `json:"finished"`
}

func educationResponse(e models.Education) EducationResponse {
	return EducationResponse{
		ID:                      e.ID,
		UserID:                  e.UserID,
		EducationLevel:          string(e.EducationLevel),
		FieldOfStudy:            e.FieldOfStudy,
		Institution:             e.Institution,
		AchievementsDescription: e.AchievementsDescription,
		StartedDate:             Date{e.StartedDate},
		GraduationDate:          datePtr(e.GraduationDate),
		Finished:                e.Finished,
	}
}

type educationRequest struct {
	ID                      uuid.UUID `json:"id"`
	EducationLevel          string    `json:"educationLevel" validate:"required,oneof=HIGH_SCHOOL ASSOCIATE BACHELOR MASTER PHD"`
	FieldOfStudy            string    `json:"fieldOfStudy"`
	Institution             string    `json:"institution" validate:"required"`
	AchievementsDescription string    `json:"achievementsDescription"`
	StartedDate             Date      `json:"startedDate" validate:"required"`
	GraduationDate          *Date     `json:"graduationDate"`
	Finished                bool      `json:"finished"`
}

func (req educationRequest) toModel() models.Education {
	return models.Education{
		ID:                      req.ID,
		EducationLevel:          models.EducationLevel(req.EducationLevel),
		FieldOfStudy:            req.FieldOfStudy,
		Institution:             req.Institution,
		AchievementsDescription: req.AchievementsDescription,
		StartedDate:             req.StartedDate.Time,
		GraduationDate:          timePtr(req.GraduationDate),
		Finished:                req.Finished,
	}
}

func (h *ProfileHandler) createEducation(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[educationRequest](w, r)
	if err != nil {
		return
	}

	created, err := h.profile.CreateEducation(r.Context(), viewer, data.toModel())
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, educationResponse(created), http.StatusCreated)
}

func (h *ProfileHandler) editEducation(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[educationRequest](w, r)
	if err != nil {
		return
	}
	if data.ID == uuid.Nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.profile.EditEducation(r.Context(), viewer, data.toModel())
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, educationResponse(updated))
}

func (h *ProfileHandler) deleteEducation(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "educationId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	if err := h.profile.DeleteEducation(r.Context(), viewer, id); err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, DeleteResponse{Message: "Education deleted"})
}

func (h *ProfileHandler) getEducation(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "educationId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	edu, err := h.profile.GetEducation(r.Context(), viewer, id)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, educationResponse(edu))
}

func (h *ProfileHandler) listEducations(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	owner, err := listOwner(r, viewer)
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	edus, err := h.profile.ListEducations(r.Context(), viewer, owner)
	if err != nil {
		renderError(w, err)
		return
	}

	response := make([]EducationResponse, 0, len(edus))
	for _, e := range edus {
		response = append(response, educationResponse(e))
	}
	render.JSON(w, response)
}

// Skills

type SkillResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	SkillName string    `json:"skillName"`
}

func skillResponse(s models.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, UserID: s.UserID, SkillName: s.SkillName}
}

type skillRequest struct {
	ID        uuid.UUID `json:"id"`
	SkillName string    `json:"skillName" validate:"required"`
}

func (h *ProfileHandler) createSkill(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[skillRequest](w, r)
	if err != nil {
		return
	}

	created, err := h.profile.CreateSkill(r.Context(), viewer, models.Skill{SkillName: data.SkillName})
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, skillResponse(created), http.StatusCreated)
}

func (h *ProfileHandler) editSkill(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[skillRequest](w, r)
	if err != nil {
		return
	}
	if data.ID == uuid.Nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.profile.EditSkill(r.Context(), viewer, models.Skill{ID: data.ID, SkillName: data.SkillName})
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, skillResponse(updated))
}

func (h *ProfileHandler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "skillId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	if err := h.profile.DeleteSkill(r.Context(), viewer, id); err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, DeleteResponse{Message: "Skill deleted"})
}

func (h *ProfileHandler) getSkill(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "skillId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	skill, err := h.profile.GetSkill(r.Context(), viewer, id)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, skillResponse(skill))
}

func (h *ProfileHandler) listSkills(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	owner, err := listOwner(r, viewer)
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	skills, err := h.profile.ListSkills(r.Context(), viewer, owner)
	if err != nil {
		renderError(w, err)
		return
	}

	response := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		response = append(response, skillResponse(s))
	}
	render.JSON(w, response)
}

// Projects

type ProjectResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ProjectName  string    `json:"projectName"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	StartDate    Date      `json:"startDate"`
	EndDate      *Date     `json:"endDate,omitempty"`
	Finished     bool      `json:"finished"`
}

func projectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		ProjectName:  p.ProjectName,
		Description:  p.Description,
		Technologies: p.Technologies,
		StartDate:    Date{p.StartDate},
		EndDate:      datePtr(p.EndDate),
		Finished:     p.Finished,
	}
}

type projectRequest struct {
	ID           uuid.UUID `json:"id"`
	ProjectName  string    `json:"projectName" validate:"required"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	StartDate    Date      `json:"startDate" validate:"required"`
	EndDate      *Date     `json:"endDate"`
	Finished     bool      `json:"finished"`
}

func (req projectRequest) toModel() models.Project {
	return models.Project{
		ID:           req.ID,
		ProjectName:  req.ProjectName,
		Description:  req.Description,
		Technologies: req.Technologies,
		StartDate:    req.StartDate.Time,
		EndDate:      timePtr(req.EndDate),
		Finished:     req.Finished,
	}
}

func (h *ProfileHandler) createProject(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[projectRequest](w, r)
	if err != nil {
		return
	}

	created, err := h.profile.CreateProject(r.Context(), viewer, data.toModel())
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, projectResponse(created), http.StatusCreated)
}

func (h *ProfileHandler) editProject(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[projectRequest](w, r)
	if err != nil {
		return
	}
	if data.ID == uuid.Nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.profile.EditProject(r.Context(), viewer, data.toModel())
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, projectResponse(updated))
}

func (h *ProfileHandler) deleteProject(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "projectId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	if err := h.profile.DeleteProject(r.Context(), viewer, id); err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, DeleteResponse{Message: "Project deleted"})
}

func (h *ProfileHandler) getProject(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "projectId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	project, err := h.profile.GetProject(r.Context(), viewer, id)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, projectResponse(project))
}

func (h *ProfileHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	owner, err := listOwner(r, viewer)
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	projects, err := h.profile.ListProjects(r.Context(), viewer, owner)
	if err != nil {
		renderError(w, err)
		return
	}

	response := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, projectResponse(p))
	}
	render.JSON(w, response)
}

// English levels

type EnglishLevelResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Level       string    `json:"level"`
	Certificate string    `json:"certificate,omitempty"`
}

func englishLevelResponse(l models.ApplicantEnglishLevel) EnglishLevelResponse {
	return EnglishLevelResponse{ID: l.ID, UserID: l.UserID, Level: string(l.Level), Certificate: l.Certificate}
}

type englishLevelRequest struct {
	ID          uuid.UUID `json:"id"`
	Level       string    `json:"level" validate:"required,oneof=A1 A2 B1 B2 C1 C2"`
	Certificate string    `json:"certificate"`
}

func (h *ProfileHandler) createEnglishLevel(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[englishLevelRequest](w, r)
	if err != nil {
		return
	}

	created, err := h.profile.CreateEnglishLevel(r.Context(), viewer, models.ApplicantEnglishLevel{
		Level:       models.EnglishLevel(data.Level),
		Certificate: data.Certificate,
	})
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSONWithStatus(w, englishLevelResponse(created), http.StatusCreated)
}

func (h *ProfileHandler) editEnglishLevel(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := render.BindAndValidate[englishLevelRequest](w, r)
	if err != nil {
		return
	}
	if data.ID == uuid.Nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	updated, err := h.profile.EditEnglishLevel(r.Context(), viewer, models.ApplicantEnglishLevel{
		ID:          data.ID,
		Level:       models.EnglishLevel(data.Level),
		Certificate: data.Certificate,
	})
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, englishLevelResponse(updated))
}

func (h *ProfileHandler) deleteEnglishLevel(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "applicantEnglishLevelId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	if err := h.profile.DeleteEnglishLevel(r.Context(), viewer, id); err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, DeleteResponse{Message: "English level deleted"})
}

func (h *ProfileHandler) getEnglishLevel(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuidQuery(r, "applicantEnglishLevelId")
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	level, err := h.profile.GetEnglishLevel(r.Context(), viewer, id)
	if err != nil {
		renderError(w, err)
		return
	}

	render.JSON(w, englishLevelResponse(level))
}

func (h *ProfileHandler) listEnglishLevels(w http.ResponseWriter, r *http.Request) {
	viewer, ok := UserFromContext(r.Context())
	if !ok {
		render.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	owner, err := listOwner(r, viewer)
	if err != nil {
		render.Error(w, render.ValidationErrorKey, http.StatusBadRequest)
		return
	}

	levels, err := h.profile.ListEnglishLevels(r.Context(), viewer, owner)
	if err != nil {
		renderError(w, err)
		return
	}

	response := make([]EnglishLevelResponse, 0, len(levels))
	for _, l := range levels {
		response = append(response, englishLevelResponse(l))
	}
	render.JSON(w, response)
}
