package client

import "fmt"

// GenericErrorMessage is shown for every key the table does not know
const GenericErrorMessage = "Unexpected error occurred. Try again later."

// APIError is any non-2xx response from the service. Key is the stable
// message key from the error envelope; Message() translates it.
type APIError struct {
	Status int
	Key    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d key=%s", e.Status, e.Key)
}

// Message returns the user facing text for the error key
func (e *APIError) Message() string {
	return MessageForKey(e.Key)
}

// MessageForKey translates a message key to user facing text, falling back
// to the generic message for unknown keys
func MessageForKey(key string) string {
	if msg, ok := errorMessages[key]; ok {
		return msg
	}
	return GenericErrorMessage
}

var errorMessages = map[string]string{
	"userNotFound":                 "Invalid username or password. Please check your credentials.",
	"invalidUsernameOrPassword":    "Invalid username or password. Please check your credentials.",
	"autoGeneratedPasswordExpired": "Temporary generated password expired. Please reset your password.",

	"unexpectedErrorOccurred":  "Unexpected error occurred. Try again later.",
	"usernameExists":           "Username is already taken.",
	"emailExists":              "Email already taken.",
	"alreadyAppliedForThisJob": "You have already applied for this job.",

	"workExperienceNotFound":            "The work experience record you're looking for doesn't exist.",
	"unAuthorizedToViewWorkExperiences": "You are not authorized to view these work experiences.",
	"unAuthorizedToViewWorkExperience":  "You are not authorized to view this work experience.",

	"educationNotFound":            "The selected education record was not found.",
	"unAuthorizedToViewEducations": "You are not authorized to view this user's education history.",
	"unAuthorizedToViewEducation":  "You are not authorized to view this education record.",

	"skillNotFound":            "The selected skill was not found.",
	"unAuthorizedToViewSkills": "You are not authorized to view this user's skills.",
	"unAuthorizedToViewSkill":  "You are not authorized to view this skill.",

	"applicantEnglishLevelNotFound":           "The requested English level entry was not found.",
	"unAuthorizedToViewApplicantEnglishLevel": "You are not authorized to view this English level entry.",

	"projectNotFound":                  "The requested project was not found.",
	"notAuthorizedToViewTheseProjects": "You are not authorized to view these projects.",
	"notAuthorizedToViewThisProject":   "You are not authorized to view this project.",

	"startDateCannotBeInFuture":               "Start date cannot be in the future.",
	"endDateRequiredWhenExperienceIsFinished": "End date is required when experience is marked as finished.",
	"endDateRequiredWhenProjectIsFinished":    "End date is required when project is marked as finished.",
	"endDateMustBeAfterStartDate":             "End date must be after start date.",

	"jobPostingNotFound":         "The requested job posting does not exist.",
	"officesShouldHaveALocation": "For hybrid or on-site positions, both city and country must be provided.",
	"jobPostingClosed":           "This job posting is closed. Please try again later.",

	"invalidPassword":  "The password provided is invalid. Please try again.",
	"unauthorized":     "You do not have permission to perform this action.",
	"accessDenied":     "Access denied. Please log in with the appropriate credentials.",
	"validationError":  "One or more fields are invalid. Please check your input.",
	"resourceNotFound": "Requested resource could not be found.",
	"operationFailed":  "Operation failed. Please try again later.",
}
