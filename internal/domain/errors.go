package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Team errors
	ErrTeamNotFound     = errors.New("team not found")
	ErrParticipantCount = errors.New("invalid number of team participants")
	ErrDuplicateEmail   = errors.New("duplicate participant email")

	// Participant errors
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrParticipantInOtherTeam = errors.New("participant belongs to another team")

	// Task errors
	ErrTaskNotFound = errors.New("task not found")

	// Assignment errors
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentExists   = errors.New("assignment already exists")

	// General errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternalError = errors.New("internal server error")
	ErrDatabaseError = errors.New("database error")
)

// ValidationError is returned by value object constructors.
// Field is the name of the rejected value object (id, name, email, ...).
type ValidationError struct {
	Field string
	Value string
	cause error
}

func newValidationError(field, value string, cause error) *ValidationError {
	return &ValidationError{Field: field, Value: value, cause: cause}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Field, e.Value)
}

// Unwrap exposes both ErrInvalidInput and the underlying parser error, if any.
func (e *ValidationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.cause}
}

// TeamValidationError reports a participant count or email uniqueness failure.
type TeamValidationError struct {
	Reason string
	kind   error
}

// DuplicateEmailError reports two members of one team sharing email.
func DuplicateEmailError(email string) *TeamValidationError {
	return &TeamValidationError{
		Reason: fmt.Sprintf("同じメールアドレスの参加者が複数存在します: %s", email),
		kind:   ErrDuplicateEmail,
	}
}

func (e *TeamValidationError) Error() string {
	return "Invalid team: " + e.Reason
}

func (e *TeamValidationError) Unwrap() []error {
	return []error{ErrInvalidInput, e.kind}
}

// ErrorCode represents API error codes
type ErrorCode string

const (
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeBadRequest           ErrorCode = "BAD_REQUEST"
	CodeConflict             ErrorCode = "CONFLICT"
	CodeUnsupportedMediaType ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured error response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Error implements error interface
func (e *APIError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewAPIError creates a new API error
func NewAPIError(code ErrorCode, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// ToAPIError converts domain errors to API errors
func ToAPIError(err error) *APIError {
	switch {
	case errors.Is(err, ErrAssignmentExists), errors.Is(err, ErrParticipantInOtherTeam):
		return NewAPIError(CodeConflict, err.Error())
	case errors.Is(err, ErrTeamNotFound), errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrParticipantNotFound), errors.Is(err, ErrAssignmentNotFound):
		return NewAPIError(CodeNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		return NewAPIError(CodeBadRequest, err.Error())
	default:
		return NewAPIError(CodeInternalError, "internal server error")
	}
}
