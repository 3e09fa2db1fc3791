package apperrors

import (
	"net/http"
)

// =========================================================================
// Фабрики
// =========================================================================

// ErrNotFound - 404, обычно из gorm.ErrRecordNotFound через sentinel репозитория
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ошибки
// =========================================================================

// --- Auth ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
).WithRedirect(DashboardPath)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
).WithRedirect(LoginPath)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters with letters and digits required.",
	http.StatusBadRequest,
)

// --- Profile ---

// ErrProfileIncomplete - нет профиля или не заполнены company_name / company_stage
var ErrProfileIncomplete = New(
	CodeProfileIncomplete,
	"profile",
	"Profile is incomplete",
	http.StatusConflict,
).WithRedirect(OnboardingPath)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Feed ---

var ErrFeedExhausted = New(
	CodeFeedExhausted,
	"feed",
	"No more opportunities in this session",
	http.StatusConflict,
).WithRedirect(DashboardPath)

var ErrStaleCursor = New(
	CodeConflict,
	"feed",
	"Swipe session was advanced by another request",
	http.StatusConflict,
)

// --- Opportunities ---

var ErrOpportunityInUse = New(
	CodeConflict,
	"opportunity",
	"Opportunity has matches and cannot be deleted",
	http.StatusConflict,
)

// --- Onboarding ---

var ErrInvalidWizardTransition = New(
	CodeInvalidStatus,
	"onboarding",
	"Operation not allowed for the current onboarding step",
	http.StatusBadRequest,
)
