package client

import (
	"context"
	"net/http"
	"net/url"
)

// Profile record families. Dates travel in the yyyy-MM-dd format the service
// uses for profile records.

type WorkExperience struct {
	ID             string `json:"id,omitempty"`
	UserID         string `json:"userId,omitempty"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	EmploymentType string `json:"employmentType"`
	Description    string `json:"description,omitempty"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate,omitempty"`
	Finished       bool   `json:"finished"`
}

type Education struct {
	ID                      string `json:"id,omitempty"`
	UserID                  string `json:"userId,omitempty"`
	EducationLevel          string `json:"educationLevel"`
	FieldOfStudy            string `json:"fieldOfStudy,omitempty"`
	Institution             string `json:"institution"`
	AchievementsDescription string `json:"achievementsDescription,omitempty"`
	StartedDate             string `json:"startedDate"`
	GraduationDate          string `json:"graduationDate,omitempty"`
	Finished                bool   `json:"finished"`
}

type Skill struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"userId,omitempty"`
	SkillName string `json:"skillName"`
}

type Project struct {
	ID           string `json:"id,omitempty"`
	UserID       string `json:"userId,omitempty"`
	ProjectName  string `json:"projectName"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	Finished     bool   `json:"finished"`
}

type EnglishLevel struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"userId,omitempty"`
	Level       string `json:"level"`
	Certificate string `json:"certificate,omitempty"`
}

// listQuery builds the owner selector of a list call. Empty userID means the
// session user's own records.
func listQuery(userID string) url.Values {
	if userID == "" {
		return nil
	}
	return url.Values{"userId": {userID}}
}

func idQuery(name string, id string) url.Values {
	return url.Values{name: {id}}
}

// Work experiences

func (p *Private) CreateWorkExperience(ctx context.Context, exp WorkExperience) (WorkExperience, error) {
	var result WorkExperience
	err := p.do(ctx, http.MethodPost, "/workExp/create", nil, exp, &result)
	return result, err
}

func (p *Private) EditWorkExperience(ctx context.Context, exp WorkExperience) (WorkExperience, error) {
	var result WorkExperience
	err := p.do(ctx, http.MethodPut, "/workExp/edit", nil, exp, &result)
	return result, err
}

func (p *Private) DeleteWorkExperience(ctx context.Context, id string) error {
	return p.do(ctx, http.MethodDelete, "/workExp", idQuery("workExperienceId", id), nil, nil)
}

func (p *Private) WorkExperience(ctx context.Context, id string) (WorkExperience, error) {
	var result WorkExperience
	err := p.do(ctx, http.MethodGet, "/workExp/getWorkExperience", idQuery("workExperienceId", id), nil, &result)
	return result, err
}

// WorkExperiences lists a user's experiences, own records when userID is
// empty
func (p *Private) WorkExperiences(ctx context.Context, userID string) ([]WorkExperience, error) {
	var result []WorkExperience
	err := p.do(ctx, http.MethodGet, "/workExp/userWorkExperiences", listQuery(userID), nil, &result)
	return result, err
}

// Educations

func (p *Private) CreateEducation(ctx context.Context, edu Education) (Education, error) {
	var result Education
	err := p.do(ctx, http.MethodPost, "/education/create", nil, edu, &result)
	return result, err
}

func (p *Private) EditEducation(ctx context.Context, edu Education) (Education, error) {
	var result Education
	err := p.do(ctx, http.MethodPut, "/education/edit", nil, edu, &result)
	return result, err
}

func (p *Private) DeleteEducation(ctx context.Context, id string) error {
	return p.do(ctx, http.MethodDelete, "/education", idQuery("educationId", id), nil, nil)
}

func (p *Private) Education(ctx context.Context, id string) (Education, error) {
	var result Education
	err := p.do(ctx, http.MethodGet, "/education/getEducation", idQuery("educationId", id), nil, &result)
	return result, err
}

func (p *Private) Educations(ctx context.Context, userID string) ([]Education, error) {
	var result []Education
	err := p.do(ctx, http.MethodGet, "/education/userEducations", listQuery(userID), nil, &result)
	return result, err
}

// Skills

func (p *Private) CreateSkill(ctx context.Context, skill Skill) (Skill, error) {
	var result Skill
	err := p.do(ctx, http.MethodPost, "/skill/create", nil, skill, &result)
	return result, err
}

func (p *Private) EditSkill(ctx context.Context, skill Skill) (Skill, error) {
	var result Skill
	err := p.do(ctx, http.MethodPut, "/skill/edit", nil, skill, &result)
	return result, err
}

func (p *Private) DeleteSkill(ctx context.Context, id string) error {
	return p.do(ctx, http.MethodDelete, "/skill", idQuery("skillId", id), nil, nil)
}

func (p *Private) Skill(ctx context.Context, id string) (Skill, error) {
	var result Skill
	err := p.do(ctx, http.MethodGet, "/skill/getSkill", idQuery("skillId", id), nil, &result)
	return result, err
}

func (p *Private) Skills(ctx context.Context, userID string) ([]Skill, error) {
	var result []Skill
	err := p.do(ctx, http.MethodGet, "/skill/userSkills", listQuery(userID), nil, &result)
	return result, err
}

// Projects

func (p *Private) CreateProject(ctx context.Context, project Project) (Project, error) {
	var result Project
	err := p.do(ctx, http.MethodPost, "/project/create", nil, project, &result)
	return result, err
}

func (p *Private) EditProject(ctx context.Context, project Project) (Project, error) {
	var result Project
	err := p.do(ctx, http.MethodPut, "/project/edit", nil, project, &result)
	return result, err
}

func (p *Private) DeleteProject(ctx context.Context, id string) error {
	return p.do(ctx, http.MethodDelete, "/project", idQuery("projectId", id), nil, nil)
}

func (p *Private) Project(ctx context.Context, id string) (Project, error) {
	var result Project
	err := p.do(ctx, http.MethodGet, "/project/getProject", idQuery("projectId", id), nil, &result)
	return result, err
}

func (p *Private) Projects(ctx context.Context, userID string) ([]Project, error) {
	var result []Project
	err := p.do(ctx, http.MethodGet, "/project/userProjects", listQuery(userID), nil, &result)
	return result, err
}

// English levels

func (p *Private) CreateEnglishLevel(ctx context.Context, level EnglishLevel) (EnglishLevel, error) {
	var result EnglishLevel
	err := p.do(ctx, http.MethodPost, "/applicantEnglishLevel/create", nil, level, &result)
	return result, err
}

func (p *Private) EditEnglishLevel(ctx context.Context, level EnglishLevel) (EnglishLevel, error) {
	var result EnglishLevel
	err := p.do(ctx, http.MethodPut, "/applicantEnglishLevel/edit", nil, level, &result)
	return result, err
}

func (p *Private) DeleteEnglishLevel(ctx context.Context, id string) error {
	return p.do(ctx, http.MethodDelete, "/applicantEnglishLevel", idQuery("applicantEnglishLevelId", id), nil, nil)
}

func (p *Private) EnglishLevel(ctx context.Context, id string) (EnglishLevel, error) {
	var result EnglishLevel
	err := p.do(ctx, http.MethodGet, "/applicantEnglishLevel/getApplicantEnglishLevel", idQuery("applicantEnglishLevelId", id), nil, &result)
	return result, err
}

func (p *Private) EnglishLevels(ctx context.Context, userID string) ([]EnglishLevel, error) {
	var result []EnglishLevel
	err := p.do(ctx, http.MethodGet, "/applicantEnglishLevel/userApplicantEnglishLevels", listQuery(userID), nil, &result)
	return result, err
}
