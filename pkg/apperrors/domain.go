package apperrors

import (
	"fmt"
	"net/http"
)

// Domain names used across the service layer.
const (
	DomainAuth         = "auth"
	DomainUser         = "user"
	DomainClient       = "client"
	DomainOrganization = "organization"
	DomainCase         = "case"
	DomainDocument     = "document"
	DomainEvent        = "event"
	DomainResearch     = "research"
	DomainRuling       = "ruling"
	DomainNotification = "notification"
	DomainMigration    = "migration"
)

// --- auth ---

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, DomainAuth, "Invalid email or password", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, DomainAuth, "Invalid or malformed token", http.StatusUnauthorized)
	ErrTokenExpired       = New(CodeTokenExpired, DomainAuth, "Token has expired", http.StatusUnauthorized)
	ErrEmailTaken         = New(CodeAlreadyExists, DomainUser, "Email is already registered", http.StatusConflict)
)

// --- lookup failures ---

func UserNotFound() *AppError {
	return New(CodeNotFound, DomainUser, "User not found", http.StatusNotFound)
}

func ClientNotFound() *AppError {
	return New(CodeNotFound, DomainClient, "Client not found", http.StatusNotFound)
}

func OrganizationNotFound() *AppError {
	return New(CodeNotFound, DomainOrganization, "Organization not found", http.StatusNotFound)
}

func CaseNotFound() *AppError {
	return New(CodeNotFound, DomainCase, "Case not found", http.StatusNotFound)
}

func DocumentNotFound() *AppError {
	return New(CodeNotFound, DomainDocument, "Document not found", http.StatusNotFound)
}

func EventNotFound() *AppError {
	return New(CodeNotFound, DomainEvent, "Event not found", http.StatusNotFound)
}

func ResearchNotFound() *AppError {
	return New(CodeNotFound, DomainResearch, "Research record not found", http.StatusNotFound)
}

func RulingNotFound() *AppError {
	return New(CodeNotFound, DomainRuling, "Ruling not found", http.StatusNotFound)
}

// --- case domain ---

func CaseNumberTaken(number string) *AppError {
	return New(CodeAlreadyExists, DomainCase, fmt.Sprintf("Case number %q is already in use", number), http.StatusConflict)
}

func InvalidCaseStatus(status string) *AppError {
	return New(CodeInvalidStatus, DomainCase, fmt.Sprintf("Invalid case status %q", status), http.StatusBadRequest)
}

func CaseAccessDenied() *AppError {
	return New(CodeForbidden, DomainCase, "You do not have access to this case", http.StatusForbidden)
}

// --- notification domain ---

func UnknownNotificationType(t string) *AppError {
	return New(CodeValidationFailed, DomainNotification, fmt.Sprintf("Unknown notification type %q", t), http.StatusBadRequest)
}

// --- storage ---

// DatabaseError wraps an unexpected storage failure.
func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "storage", "Database operation failed", http.StatusInternalServerError)
}
