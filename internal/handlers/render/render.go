// Package render writes JSON responses and decodes request bodies.
// Error responses follow the envelope {"message": "<key>"} where the key is
// a stable identifier clients translate to user facing text.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorKey is the message key of failed request validation
const ValidationErrorKey = "validationError"

var validate = newValidator()

type Struct any

type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, data any) {
	JSONWithStatus(w, data, http.StatusOK)
}

// Error renders the message-key envelope with the given status
func Error(w http.ResponseWriter, key string, code int) {
	JSONWithStatus(w, ErrorResponse{Message: key}, code)
}

// DecodeError renders a body decoding failure
func DecodeError(w http.ResponseWriter, err error) {
	response := ErrorResponse{
		Message: ValidationErrorKey,
		Fields:  map[string]string{},
	}

	// Point at the broken field when the decoder knows it
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		response.Fields[typeErr.Field] = fmt.Sprintf("invalid data type, expected %s", typeErr.Type)
	}

	JSONWithStatus(w, response, http.StatusBadRequest)
}

// ValidationErrors renders field level validation failures
func ValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	response := ErrorResponse{
		Message: ValidationErrorKey,
		Fields:  make(map[string]string, len(errs)),
	}

	for _, fieldError := range errs {
		var message string
		switch fieldError.Tag() {
		case "required":
			message = "This field is required"
		case "min":
			message = fmt.Sprintf("Value is too short (minimum %s)", fieldError.Param())
		case "max":
			message = fmt.Sprintf("Value is too long (maximum %s)", fieldError.Param())
		case "email":
			message = "Must be a valid email address"
		case "oneof":
			message = fmt.Sprintf("Must be one of: %s", fieldError.Param())
		default:
			message = "Invalid value"
		}

		response.Fields[fieldError.Field()] = message
	}

	JSONWithStatus(w, response, http.StatusBadRequest)
}

// BindAndValidate decodes the JSON request body into T and validates it using
// struct tags. Failures are rendered for the caller, so on error the handler
// just returns.
func BindAndValidate[T Struct](w http.ResponseWriter, r *http.Request) (T, error) {
	var value T

	err := json.NewDecoder(r.Body).Decode(&value)
	if err != nil {
		DecodeError(w, err)
		return value, err
	}

	err = validate.Struct(value)
	if err != nil {
		// cast is safe, T is a plain struct
		errs := err.(validator.ValidationErrors)
		ValidationErrors(w, errs)
		return value, err
	}

	return value, nil
}

// JSONWithStatus sends data as json and enforces the status code
func JSONWithStatus(w http.ResponseWriter, data any, code int) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)

	if err := enc.Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}
