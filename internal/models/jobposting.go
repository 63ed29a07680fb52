package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EmploymentType string

const (
	EmploymentFullTime       EmploymentType = "FULL_TIME"
	EmploymentPartTime       EmploymentType = "PART_TIME"
	EmploymentInternship     EmploymentType = "INTERNSHIP"
	EmploymentContract       EmploymentType = "CONTRACT"
	EmploymentFreelance      EmploymentType = "FREELANCE"
	EmploymentVolunteer      EmploymentType = "VOLUNTEER"
	EmploymentApprenticeship EmploymentType = "APPRENTICESHIP"
)

type WorkingType string

const (
	WorkingOnsite WorkingType = "ONSITE"
	WorkingRemote WorkingType = "REMOTE"
	WorkingHybrid WorkingType = "HYBRID"
)

// RequiresOffice reports whether postings of this type must carry a location
func (w WorkingType) RequiresOffice() bool {
	return w == WorkingOnsite || w == WorkingHybrid
}

type EnglishLevel string

const (
	EnglishA1 EnglishLevel = "A1"
	EnglishA2 EnglishLevel = "A2"
	EnglishB1 EnglishLevel = "B1"
	EnglishB2 EnglishLevel = "B2"
	EnglishC1 EnglishLevel = "C1"
	EnglishC2 EnglishLevel = "C2"
)

// Index orders CEFR levels A1..C2 as 0..5, -1 for anything else
func (l EnglishLevel) Index() int {
	for i, level := range []EnglishLevel{EnglishA1, EnglishA2, EnglishB1, EnglishB2, EnglishC1, EnglishC2} {
		if l == level {
			return i
		}
	}
	return -1
}

type JobPosting struct {
	ID                      uuid.UUID
	CreatedAt               time.Time
	CreatedBy               uuid.UUID
	JobTitle                string
	JobDescription          string
	City                    string
	Country                 string
	WorkingType             WorkingType
	EmploymentType          EmploymentType
	MinSalary               decimal.Decimal
	MaxSalary               decimal.Decimal
	RequiredSkills          string // comma separated, as entered by the recruiter
	RequiredExperienceYears int
	RequiredEnglishLevel    EnglishLevel
	Closed                  bool
}

// SkillList splits the comma separated RequiredSkills into trimmed entries
func (p JobPosting) SkillList() []string {
	return SplitSkills(p.RequiredSkills)
}

// SplitSkills splits a comma separated skill string into trimmed, non-empty entries
func SplitSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
