package errors

import "net/http"

// Error code constants.
// Errors contain code + params only, no hardcoded messages.
// Frontend handles i18n translation. Backend logs always in English.

// Schedule error codes.
const (
	CodeScheduleNotFound   = "SCHEDULE_NOT_FOUND"
	CodeScheduleCreateFail = "SCHEDULE_CREATION_FAILED"
	CodeScheduleUpdateFail = "SCHEDULE_UPDATE_FAILED"
	CodeInvalidStatus      = "INVALID_SCHEDULE_STATUS"
	CodeInvalidWindow      = "INVALID_COLLECTION_WINDOW"
)

// Report error codes.
const (
	CodeReportNotFound    = "REPORT_NOT_FOUND"
	CodeReportCreateFail  = "REPORT_CREATION_FAILED"
	CodeReportRespondFail = "REPORT_RESPONSE_FAILED"
)

// Feedback error codes.
const (
	CodeFeedbackExists      = "FEEDBACK_ALREADY_EXISTS"
	CodeFeedbackNotResolved = "FEEDBACK_REPORT_NOT_RESOLVED"
)

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
)

// Educational content error codes.
const (
	CodeContentNotFound = "CONTENT_NOT_FOUND"
)

// SMS error codes.
const (
	CodeSMSTooLong      = "SMS_MESSAGE_TOO_LONG"
	CodeSMSNoRecipients = "SMS_NO_RECIPIENTS"
	CodeSMSSendFail     = "SMS_SEND_FAILED"
	CodeSMSNotFound     = "SMS_MESSAGE_NOT_FOUND"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrScheduleNotFoundf creates a schedule not found error.
func ErrScheduleNotFoundf(scheduleID string) *AppError {
	return &AppError{
		Code:       CodeScheduleNotFound,
		Message:    "schedule not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"schedule_id": scheduleID},
	}
}

// ErrReportNotFoundf creates a report not found error.
func ErrReportNotFoundf(reportID string) *AppError {
	return &AppError{
		Code:       CodeReportNotFound,
		Message:    "report not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"report_id": reportID},
	}
}

// ErrInvalidStatusf creates a bad request error for unknown status values.
func ErrInvalidStatusf(status string) *AppError {
	return &AppError{
		Code:       CodeInvalidStatus,
		Message:    "unknown schedule status: " + status,
		HTTPStatus: http.StatusBadRequest,
	}
}
