// Package apperrors holds the sentinel errors shared by services, repositories
// and handlers. Each sentinel carries the wire-level message key that clients
// receive in the error envelope {"message": "<key>"}.
package apperrors

import (
	"errors"
)

// Error is a sentinel with a stable message key.
// The key is the whole client contract: handlers render it verbatim and
// clients map it to user-facing text.
type Error struct {
	Key string
}

func (e *Error) Error() string { return e.Key }

// New creates a sentinel error with the given message key
func New(key string) *Error { return &Error{Key: key} }

var (
	ErrUserNotFound             = New("userNotFound")
	ErrInvalidCredentials       = New("invalidUsernameOrPassword")
	ErrTemporaryPasswordExpired = New("autoGeneratedPasswordExpired")
	ErrUsernameExists           = New("usernameExists")
	ErrEmailExists              = New("emailExists")
	ErrInvalidPassword          = New("invalidPassword")
	ErrUnauthorized             = New("unauthorized")
	ErrAccessDenied             = New("accessDenied")

	ErrRefreshTokenNotFound = New("refreshTokenNotFound")
	ErrRefreshTokenExpired  = New("refreshTokenExpired")

	ErrJobPostingNotFound  = New("jobPostingNotFound")
	ErrJobPostingClosed    = New("jobPostingClosed")
	ErrOfficeNeedsLocation = New("officesShouldHaveALocation")
	ErrAlreadyApplied      = New("alreadyAppliedForThisJob")
	ErrApplicationNotFound = New("resourceNotFound")

	ErrWorkExperienceNotFound   = New("workExperienceNotFound")
	ErrWorkExperiencesForbidden = New("unAuthorizedToViewWorkExperiences")
	ErrWorkExperienceForbidden  = New("unAuthorizedToViewWorkExperience")
	ErrEducationNotFound        = New("educationNotFound")
	ErrEducationsForbidden      = New("unAuthorizedToViewEducations")
	ErrEducationForbidden       = New("unAuthorizedToViewEducation")
	ErrSkillNotFound            = New("skillNotFound")
	ErrSkillsForbidden          = New("unAuthorizedToViewSkills")
	ErrSkillForbidden           = New("unAuthorizedToViewSkill")
	ErrProjectNotFound          = New("projectNotFound")
	ErrProjectsForbidden        = New("notAuthorizedToViewTheseProjects")
	ErrProjectForbidden         = New("notAuthorizedToViewThisProject")
	ErrEnglishLevelNotFound     = New("applicantEnglishLevelNotFound")
	ErrEnglishLevelForbidden    = New("unAuthorizedToViewApplicantEnglishLevel")

	ErrStartDateInFuture       = New("startDateCannotBeInFuture")
	ErrEndDateRequiredFinished = New("endDateRequiredWhenExperienceIsFinished")
	ErrProjectEndDateRequired  = New("endDateRequiredWhenProjectIsFinished")
	ErrEndBeforeStart          = New("endDateMustBeAfterStartDate")
)

// Key returns the message key for err: the key of the wrapped sentinel when
// there is one, the generic fallback key otherwise.
func Key(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Key
	}
	return "unexpectedErrorOccurred"
}
