package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/lib/pq"

	"github.com/aws11/account-api/internal/service/inquiry"
	"github.com/aws11/account-api/internal/service/report"
	"github.com/aws11/account-api/internal/service/user"
)

// Postgres error codes the boundary translates. Everything else from the
// driver is treated as an internal failure.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// handleServiceError translates service-layer errors into HTTP responses.
// Validation and business-rule failures keep their specific message; 500s
// are logged server-side and get a generic message outside development.
func (h *Handlers) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, report.ErrSelfReport):
		respondError(w, http.StatusBadRequest, "ValidationError", err.Error())
	case errors.Is(err, report.ErrDuplicate):
		respondError(w, http.StatusConflict, "ConflictError", err.Error())
	case errors.Is(err, user.ErrNicknameTaken):
		respondError(w, http.StatusConflict, "ConflictError", err.Error())
	case errors.Is(err, report.ErrNotFound),
		errors.Is(err, inquiry.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		respondError(w, http.StatusNotFound, "NotFoundError", err.Error())
	default:
		h.handleTypedError(w, err)
	}
}

func (h *Handlers) handleTypedError(w http.ResponseWriter, err error) {
	var invalidReason *report.InvalidReasonError
	var reportVal *report.ValidationError
	var inquiryVal *inquiry.ValidationError
	var userVal *user.ValidationError
	var pqErr *pq.Error

	switch {
	case errors.As(err, &invalidReason),
		errors.As(err, &reportVal),
		errors.As(err, &inquiryVal),
		errors.As(err, &userVal):
		respondError(w, http.StatusBadRequest, "ValidationError", err.Error())
	case errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation:
		respondError(w, http.StatusConflict, "ConflictError", "resource already exists")
	case errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation:
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid reference")
	default:
		h.internalError(w, err)
	}
}

// internalError logs the full error and returns a message that is generic
// everywhere except development-like environments.
func (h *Handlers) internalError(w http.ResponseWriter, err error) {
	log.Printf("[api] internal error: %v", err)
	msg := "an unexpected error occurred"
	if h.devMode && err != nil {
		msg = err.Error()
	}
	respondError(w, http.StatusInternalServerError, "ServerError", msg)
}
