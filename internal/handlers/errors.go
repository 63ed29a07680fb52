package handlers

import (
	"errors"
	"net/http"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/handlers/render"
)

var (
	notFoundErrors = []error{
		apperrors.ErrUserNotFound,
		apperrors.ErrJobPostingNotFound,
		apperrors.ErrApplicationNotFound,
		apperrors.ErrWorkExperienceNotFound,
		apperrors.ErrEducationNotFound,
		apperrors.ErrSkillNotFound,
		apperrors.ErrProjectNotFound,
		apperrors.ErrEnglishLevelNotFound,
	}

	conflictErrors = []error{
		apperrors.ErrUsernameExists,
		apperrors.ErrEmailExists,
		apperrors.ErrAlreadyApplied,
		apperrors.ErrJobPostingClosed,
	}

	unauthorizedErrors = []error{
		apperrors.ErrInvalidCredentials,
		apperrors.ErrTemporaryPasswordExpired,
		apperrors.ErrRefreshTokenNotFound,
		apperrors.ErrRefreshTokenExpired,
		apperrors.ErrUnauthorized,
	}

	forbiddenErrors = []error{
		apperrors.ErrAccessDenied,
		apperrors.ErrWorkExperienceForbidden,
		apperrors.ErrWorkExperiencesForbidden,
		apperrors.ErrEducationForbidden,
		apperrors.ErrEducationsForbidden,
		apperrors.ErrSkillForbidden,
		apperrors.ErrSkillsForbidden,
		apperrors.ErrProjectForbidden,
		apperrors.ErrProjectsForbidden,
		apperrors.ErrEnglishLevelForbidden,
	}

	badRequestErrors = []error{
		apperrors.ErrOfficeNeedsLocation,
		apperrors.ErrInvalidPassword,
		apperrors.ErrStartDateInFuture,
		apperrors.ErrEndDateRequiredFinished,
		apperrors.ErrProjectEndDateRequired,
		apperrors.ErrEndBeforeStart,
	}
)

// renderError maps a service error onto the message-key envelope. Every
// sentinel keeps its key; anything unexpected becomes a plain 500.
func renderError(w http.ResponseWriter, err error) {
	render.Error(w, apperrors.Key(err), statusOf(err))
}

func statusOf(err error) int {
	switch {
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case isAny(err, unauthorizedErrors):
		return http.StatusUnauthorized
	case isAny(err, forbiddenErrors):
		return http.StatusForbidden
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
