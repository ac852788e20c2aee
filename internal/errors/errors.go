package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation"
	ErrorTypeUnsupportedFormat ErrorType = "unsupported_format"
	ErrorTypeParse             ErrorType = "parse"
	ErrorTypeServer            ErrorType = "server"
)

// AppError carries a client-safe Message and, separately, the Cause that is
// only ever logged.
type AppError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func newAppError(typ ErrorType, code, message string, cause error) *AppError {
	return &AppError{
		Type:    typ,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(code, message string) *AppError {
	return newAppError(ErrorTypeValidation, code, message, nil)
}

func NewUnsupportedFormatError(code, message string) *AppError {
	return newAppError(ErrorTypeUnsupportedFormat, code, message, nil)
}

func NewParseError(code, message string, cause error) *AppError {
	return newAppError(ErrorTypeParse, code, message, cause)
}

func NewServerError(code, message string, cause error) *AppError {
	return newAppError(ErrorTypeServer, code, message, cause)
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType reports whether err carries an AppError of the given type.
func IsType(err error, typ ErrorType) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == typ
}

// StatusCode maps an error to the HTTP status returned to clients.
func StatusCode(err error) int {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeUnsupportedFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what the client sees for err. Causes never leak.
func PublicMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return MsgServerFailure
}

// Common error codes
const (
	ErrCodeNoFile            = "NO_FILE"
	ErrCodeNoFilename        = "NO_FILENAME"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrCodeEmptyFile         = "EMPTY_FILE"
	ErrCodeInvalidFilename   = "INVALID_FILENAME"
	ErrCodeParseFailed       = "PARSE_FAILED"
	ErrCodeStorageFailed     = "STORAGE_FAILED"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeResumeRequired    = "RESUME_REQUIRED"
	ErrCodeAIServiceFailed   = "AI_SERVICE_FAILED"
	ErrCodeSessionFailed     = "SESSION_FAILED"
)

// Messages returned to clients.
const (
	MsgNoFile            = "No file provided."
	MsgNoFilename        = "No file selected."
	MsgUnsupportedFormat = "Unsupported file type. Upload PDF or DOCX."
	MsgEmptyFile         = "Empty file provided."
	MsgInvalidFilename   = "Invalid file name."
	MsgParseFailed       = "Failed to parse resume file."
	MsgInvalidPayload    = "Invalid request payload"
	MsgResumeRequired    = "Resume text is required before chatting."
	MsgServerFailure     = "Something went wrong on the server."
)
