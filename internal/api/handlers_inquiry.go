package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aws11/account-api/internal/auth"
	"github.com/aws11/account-api/internal/dbutil"
	"github.com/aws11/account-api/internal/domain"
	"github.com/aws11/account-api/internal/service/inquiry"
)

// CreateInquiry submits a support inquiry for the authenticated caller.
//
//	POST /api/user/inquiries
func (h *Handlers) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "AuthenticationError", "unauthorized")
		return
	}

	var in inquiry.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid request body")
		return
	}

	created, err := h.inquiries.Create(r.Context(), claims.UserID, in)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// MyInquiries lists the caller's inquiries, newest first.
//
//	GET /api/user/inquiries
func (h *Handlers) MyInquiries(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "AuthenticationError", "unauthorized")
		return
	}

	out, err := h.inquiries.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// GetInquiry returns a single inquiry by id.
//
//	GET /api/user/inquiries/{inquiryID}
func (h *Handlers) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "inquiryID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid inquiry id")
		return
	}

	out, err := h.inquiries.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// UpdateInquiryStatus sets an inquiry's status and response text. Omitting
// response clears any previously stored response; answered_at is stamped
// only on a transition to answered.
//
//	PUT /api/user/inquiries/{inquiryID}/status
func (h *Handlers) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "inquiryID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid inquiry id")
		return
	}

	var body struct {
		Status   string  `json:"status"`
		Response *string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		respondError(w, http.StatusBadRequest, "ValidationError", "status is required")
		return
	}

	out, err := h.inquiries.UpdateStatus(r.Context(), id, domain.InquiryStatus(body.Status), body.Response)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// PendingInquiries lists pending inquiries in the pagination envelope.
//
//	GET /api/user/inquiries/pending?page=&pageSize=
func (h *Handlers) PendingInquiries(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	params := dbutil.NewPaginationParams(page, pageSize)

	out, total, err := h.inquiries.ListPending(r.Context(), params.Limit, params.Offset)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbutil.NewPaginationResponse(out, total, page, params.Limit))
}
