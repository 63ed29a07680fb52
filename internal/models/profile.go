package models

import (
	"time"

	"github.com/google/uuid"
)

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "HIGH_SCHOOL"
	EducationAssociate  EducationLevel = "ASSOCIATE"
	EducationBachelor   EducationLevel = "BACHELOR"
	EducationMaster     EducationLevel = "MASTER"
	EducationPhD        EducationLevel = "PHD"
)

// Rank orders education levels for scoring, 0 for anything unknown
func (l EducationLevel) Rank() int {
	switch l {
	case EducationHighSchool:
		return 1
	case EducationAssociate:
		return 2
	case EducationBachelor:
		return 3
	case EducationMaster:
		return 4
	case EducationPhD:
		return 5
	}
	return 0
}

type WorkExperience struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	JobTitle       string
	CompanyName    string
	EmploymentType EmploymentType
	Description    string
	StartDate      time.Time
	EndDate        *time.Time
	Finished       bool
}

// Years reports the experience duration in fractional years, using now for
// experiences that are still running
func (w WorkExperience) Years(now time.Time) float64 {
	end := now
	if w.EndDate != nil {
		end = *w.EndDate
	}
	if end.Before(w.StartDate) {
		return 0
	}
	return end.Sub(w.StartDate).Hours() / (24 * 365.25)
}

type Education struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	EducationLevel          EducationLevel
	FieldOfStudy            string
	Institution             string
	AchievementsDescription string
	StartedDate             time.Time
	GraduationDate          *time.Time
	Finished                bool
}

type Skill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SkillName string
}

type Project struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ProjectName  string
	Description  string
	Technologies string // comma separated
	StartDate    time.Time
	EndDate      *time.Time
	Finished     bool
}

// ApplicantEnglishLevel is the self-reported language proficiency entry
type ApplicantEnglishLevel struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Level       EnglishLevel
	Certificate string
}
