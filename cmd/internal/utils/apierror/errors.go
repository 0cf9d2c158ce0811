package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError       = NewSimple(404, "Resource not found")
	UnauthorizedError   = NewSimple(401, "Missing or invalid credentials")
	ForbiddenError      = NewSimple(403, "You are not allowed to perform this action")
	ForbiddenRoleError  = NewSimple(403, "Your role does not permit this action")
	ProfileMissingError = NewSimple(409, "No profile exists for the authenticated user")

	DuplicateCINError    = NewSimple(400, "A company with this CIN is already registered")
	DuplicateLLPINError  = NewSimple(400, "An LLP with this LLPIN is already registered")
	DINAlreadyTakenError = NewSimple(400, "This DIN is already associated with another account")
	DINMismatchError     = NewSimple(400, "The DIN on record does not match the one provided")
	DirectorInfoMissing  = NewSimple(400, "Director information has not been filled in yet")

	NoAssignedProfessionalError = NewSimple(409, "No professional is assigned to this entity")
	StageMismatchError          = NewSimple(409, "Task is not at the expected pipeline stage")
	DINAlreadyPendingError      = NewSimple(409, "This DIN already has a pending email association")

	/*
	 * Used for authentications
	 */
	UserAlreadyConfirmedError   = NewSimple(400, "User is already confirmed")
	IDPInvalidPasswordError     = NewSimple(400, "Provided password does not meet requirements")
	IDPExistingEmailError       = NewSimple(400, "Email already exists")
	IDPUserNotFoundError        = NewSimple(404, "User not found")
	IDPUserNotConfirmedError    = NewSimple(400, "User is not confirmed yet")
	IDPCredentialsMismatchError = NewSimple(400, "Credentials mismatch")
	IDPConfirmCodeMismatchError = NewSimple(400, "Confirmation code mismatch")
	IDPConfirmCodeExpiredError  = NewSimple(400, "Confirmation code has expired")
	IDPInvalidParameterError    = NewSimple(400, "Invalid parameters provided, the user is likely already verified")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "din":
			problems[field] = append(problems[field], "DIN must be exactly 8 digits")
		case "pan":
			problems[field] = append(problems[field], "Value must be a valid PAN (e.g. ABCDE1234F)")
		case "cin":
			problems[field] = append(problems[field], "Value must be a valid 21-character CIN")
		case "llpin":
			problems[field] = append(problems[field], "Value must be a valid LLPIN (e.g. AAB-1234)")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewTransitionError(from, action string) *APIError {
	return NewSimple(http.StatusConflict, "Cannot apply action '%s' to a request in status '%s'", action, from)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(400, "Missing required parameter '%s'", name)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewUnknownOperationError(op string) *APIError {
	return NewSimple(http.StatusBadRequest, "Unknown operation: %s", op)
}
