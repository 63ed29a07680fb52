package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Score holds the fit breakdown computed once when the user applies.
// All components are percentages in [0, 100].
type Score struct {
	English              int
	Skills               int
	Education            int
	ExperienceYears      int
	ExperienceSimilarity int
	General              int
}

type JobApplication struct {
	ID              uuid.UUID
	JobPostingID    uuid.UUID
	ApplicantID     uuid.UUID
	Status          ApplicationStatus
	ApplicationDate time.Time
	Score           Score
}

// ApplicationRow is an application joined with its posting and applicant,
// as listed by the recruiter facing filter endpoint
type ApplicationRow struct {
	JobApplication

	FullName  string
	Email     string
	JobTitle  string
	JobClosed bool
}
