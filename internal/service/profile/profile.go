// Package profile implements the applicant profile sections: work
// experiences, educations, skills, projects and english levels.
//
// Reads are allowed to the owner and to privileged staff, writes to the
// owner only.
package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
)

type ProfileService struct {
	storage repository.Storage

	// now is replaceable in tests
	now func() time.Time
}

func NewService(storage repository.Storage) *ProfileService {
	return &ProfileService{
		storage: storage,
		now:     time.Now,
	}
}

func canRead(viewer models.User, ownerID uuid.UUID) bool {
	return viewer.ID == ownerID || viewer.Role == models.RoleRecruiter || viewer.Role == models.RoleAdmin
}

// checkDates enforces the shared date rules. endRequiredErr is returned when
// the entry is finished without an end date.
func (s *ProfileService) checkDates(start time.Time, end *time.Time, finished bool, endRequiredErr error) error {
	if start.After(s.now()) {
		return apperrors.ErrStartDateInFuture
	}
	if finished && end == nil {
		return endRequiredErr
	}
	if end != nil && !end.After(start) {
		return apperrors.ErrEndBeforeStart
	}
	return nil
}

// Work experiences

func (s *ProfileService) CreateWorkExperience(ctx context.Context, owner models.User, exp models.WorkExperience) (models.WorkExperience, error) {
	exp.UserID = owner.ID
	if err := s.checkDates(exp.StartDate, exp.EndDate, exp.Finished, apperrors.ErrEndDateRequiredFinished); err != nil {
		return models.WorkExperience{}, err
	}
	return s.storage.WorkExperience().Create(ctx, exp)
}

func (s *ProfileService) EditWorkExperience(ctx context.Context, viewer models.User, exp models.WorkExperience) (models.WorkExperience, error) {
	current, err := s.storage.WorkExperience().Get(ctx, exp.ID)
	if err != nil {
		return models.WorkExperience{}, err
	}
	if current.UserID != viewer.ID {
		return models.WorkExperience{}, apperrors.ErrAccessDenied
	}
	if err := s.checkDates(exp.StartDate, exp.EndDate, exp.Finished, apperrors.ErrEndDateRequiredFinished); err != nil {
		return models.WorkExperience{}, err
	}
	exp.UserID = current.UserID
	return s.storage.WorkExperience().Update(ctx, exp)
}

func (s *ProfileService) DeleteWorkExperience(ctx context.Context, viewer models.User, id uuid.UUID) error {
	current, err := s.storage.WorkExperience().Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != viewer.ID {
		return apperrors.ErrAccessDenied
	}
	return s.storage.WorkExperience().Delete(ctx, id)
}

func (s *ProfileService) GetWorkExperience(ctx context.Context, viewer models.User, id uuid.UUID) (models.WorkExperience, error) {
	exp, err := s.storage.WorkExperience().Get(ctx, id)
	if err != nil {
		return models.WorkExperience{}, err
	}
	if !canRead(viewer, exp.UserID) {
		return models.WorkExperience{}, apperrors.ErrWorkExperienceForbidden
	}
	return exp, nil
}

func (s *ProfileService) ListWorkExperiences(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.WorkExperience, error) {
	if !canRead(viewer, userID) {
		return nil, apperrors.ErrWorkExperiencesForbidden
	}
	return s.storage.WorkExperience().ListByUser(ctx, userID)
}

// Educations

func (s *ProfileService) CreateEducation(ctx context.Context, owner models.User, edu models.Education) (models.Education, error) {
	edu.UserID = owner.ID
	if err := s.checkDates(edu.StartedDate, edu.GraduationDate, false, nil); err != nil {
		return models.Education{}, err
	}
	return s.storage.Education().Create(ctx, edu)
}

func (s *ProfileService) EditEducation(ctx context.Context, viewer models.User, edu models.Education) (models.Education, error) {
	current, err := s.storage.Education().Get(ctx, edu.ID)
	if err != nil {
		return models.Education{}, err
	}
	if current.UserID != viewer.ID {
		return models.Education{}, apperrors.ErrAccessDenied
	}
	if err := s.checkDates(edu.StartedDate, edu.GraduationDate, false, nil); err != nil {
		return models.Education{}, err
	}
	edu.UserID = current.UserID
	return s.storage.Education().Update(ctx, edu)
}

func (s *ProfileService) DeleteEducation(ctx context.Context, viewer models.User, id uuid.UUID) error {
	current, err := s.storage.Education().Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != viewer.ID {
		return apperrors.ErrAccessDenied
	}
	return s.storage.Education().Delete(ctx, id)
}

func (s *ProfileService) GetEducation(ctx context.Context, viewer models.User, id uuid.UUID) (models.Education, error) {
	edu, err := s.storage.Education().Get(ctx, id)
	if err != nil {
		return models.Education{}, err
	}
	if !canRead(viewer, edu.UserID) {
		return models.Education{}, apperrors.ErrEducationForbidden
	}
	return edu, nil
}

func (s *ProfileService) ListEducations(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.Education, error) {
	if !canRead(viewer, userID) {
		return nil, apperrors.ErrEducationsForbidden
	}
	return s.storage.Education().ListByUser(ctx, userID)
}

// Skills

func (s *ProfileService) CreateSkill(ctx context.Context, owner models.User, skill models.Skill) (models.Skill, error) {
	skill.UserID = owner.ID
	return s.storage.Skill().Create(ctx, skill)
}

func (s *ProfileService) EditSkill(ctx context.Context, viewer models.User, skill models.Skill) (models.Skill, error) {
	current, err := s.storage.Skill().Get(ctx, skill.ID)
	if err != nil {
		return models.Skill{}, err
	}
	if current.UserID != viewer.ID {
		return models.Skill{}, apperrors.ErrAccessDenied
	}
	skill.UserID = current.UserID
	return s.storage.Skill().Update(ctx, skill)
}

func (s *ProfileService) DeleteSkill(ctx context.Context, viewer models.User, id uuid.UUID) error {
	current, err := s.storage.Skill().Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != viewer.ID {
		return apperrors.ErrAccessDenied
	}
	return s.storage.Skill().Delete(ctx, id)
}

func (s *ProfileService) GetSkill(ctx context.Context, viewer models.User, id uuid.UUID) (models.Skill, error) {
	skill, err := s.storage.Skill().Get(ctx, id)
	if err != nil {
		return models.Skill{}, err
	}
	if !canRead(viewer, skill.UserID) {
		return models.Skill{}, apperrors.ErrSkillForbidden
	}
	return skill, nil
}

func (s *ProfileService) ListSkills(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.Skill, error) {
	if !canRead(viewer, userID) {
		return nil, apperrors.ErrSkillsForbidden
	}
	return s.storage.Skill().ListByUser(ctx, userID)
}

// Projects

func (s *ProfileService) CreateProject(ctx context.Context, owner models.User, project models.Project) (models.Project, error) {
	project.UserID = owner.ID
	if err := s.checkDates(project.StartDate, project.EndDate, project.Finished, apperrors.ErrProjectEndDateRequired); err != nil {
		return models.Project{}, err
	}
	return s.storage.Project().Create(ctx, project)
}

func (s *ProfileService) EditProject(ctx context.Context, viewer models.User, project models.Project) (models.Project, error) {
	current, err := s.storage.Project().Get(ctx, project.ID)
	if err != nil {
		return models.Project{}, err
	}
	if current.UserID != viewer.ID {
		return models.Project{}, apperrors.ErrAccessDenied
	}
	if err := s.checkDates(project.StartDate, project.EndDate, project.Finished, apperrors.ErrProjectEndDateRequired); err != nil {
		return models.Project{}, err
	}
	project.UserID = current.UserID
	return s.storage.Project().Update(ctx, project)
}

func (s *ProfileService) DeleteProject(ctx context.Context, viewer models.User, id uuid.UUID) error {
	current, err := s.storage.Project().Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != viewer.ID {
		return apperrors.ErrAccessDenied
	}
	return s.storage.Project().Delete(ctx, id)
}

func (s *ProfileService) GetProject(ctx context.Context, viewer models.User, id uuid.UUID) (models.Project, error) {
	project, err := s.storage.Project().Get(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	if !canRead(viewer, project.UserID) {
		return models.Project{}, apperrors.ErrProjectForbidden
	}
	return project, nil
}

func (s *ProfileService) ListProjects(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.Project, error) {
	if !canRead(viewer, userID) {
		return nil, apperrors.ErrProjectsForbidden
	}
	return s.storage.Project().ListByUser(ctx, userID)
}

// English levels

func (s *ProfileService) CreateEnglishLevel(ctx context.Context, owner models.User, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error) {
	level.UserID = owner.ID
	return s.storage.EnglishLevel().Create(ctx, level)
}

func (s *ProfileService) EditEnglishLevel(ctx context.Context, viewer models.User, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error) {
	current, err := s.storage.EnglishLevel().Get(ctx, level.ID)
	if err != nil {
		return models.ApplicantEnglishLevel{}, err
	}
	if current.UserID != viewer.ID {
		return models.ApplicantEnglishLevel{}, apperrors.ErrAccessDenied
	}
	level.UserID = current.UserID
	return s.storage.EnglishLevel().Update(ctx, level)
}

func (s *ProfileService) DeleteEnglishLevel(ctx context.Context, viewer models.User, id uuid.UUID) error {
	current, err := s.storage.EnglishLevel().Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != viewer.ID {
		return apperrors.ErrAccessDenied
	}
	return s.storage.EnglishLevel().Delete(ctx, id)
}

func (s *ProfileService) GetEnglishLevel(ctx context.Context, viewer models.User, id uuid.UUID) (models.ApplicantEnglishLevel, error) {
	level, err := s.storage.EnglishLevel().Get(ctx, id)
	if err != nil {
		return models.ApplicantEnglishLevel{}, err
	}
	if !canRead(viewer, level.UserID) {
		return models.ApplicantEnglishLevel{}, apperrors.ErrEnglishLevelForbidden
	}
	return level, nil
}

func (s *ProfileService) ListEnglishLevels(ctx context.Context, viewer models.User, userID uuid.UUID) ([]models.ApplicantEnglishLevel, error) {
	if !canRead(viewer, userID) {
		return nil, apperrors.ErrEnglishLevelForbidden
	}
	return s.storage.EnglishLevel().ListByUser(ctx, userID)
}
