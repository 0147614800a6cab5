package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aws11/account-api/internal/auth"
	"github.com/aws11/account-api/internal/dbutil"
	"github.com/aws11/account-api/internal/domain"
	"github.com/aws11/account-api/internal/service/report"
)

// CreateReport files a moderation report against another user. The reporter
// is always the authenticated caller.
//
//	POST /api/user/reports
func (h *Handlers) CreateReport(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "AuthenticationError", "unauthorized")
		return
	}

	var in report.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid request body")
		return
	}

	created, err := h.reports.Create(r.Context(), claims.UserID, in)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// MyReports lists reports filed by the authenticated caller, newest first.
//
//	GET /api/user/reports
func (h *Handlers) MyReports(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "AuthenticationError", "unauthorized")
		return
	}

	out, err := h.reports.ListByReporter(r.Context(), claims.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// GetReport returns a single report by id.
//
//	GET /api/user/reports/{reportID}
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "reportID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid report id")
		return
	}

	out, err := h.reports.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// UpdateReportStatus sets a report's status and stamps its review time.
//
//	PUT /api/user/reports/{reportID}/status
func (h *Handlers) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "reportID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid report id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		respondError(w, http.StatusBadRequest, "ValidationError", "status is required")
		return
	}

	out, err := h.reports.UpdateStatus(r.Context(), id, domain.ReportStatus(body.Status))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// PendingReports lists pending reports in the standard pagination envelope.
//
//	GET /api/user/reports/pending?page=&pageSize=
func (h *Handlers) PendingReports(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	params := dbutil.NewPaginationParams(page, pageSize)

	out, total, err := h.reports.ListPending(r.Context(), params.Limit, params.Offset)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbutil.NewPaginationResponse(out, total, page, params.Limit))
}

// SearchReports lists reports matching query-param filters as camelCase row
// maps. Unknown filters are ignored.
//
//	GET /api/user/reports/search?status=&reason=&reporterId=&reportedUserId=
func (h *Handlers) SearchReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := map[string]any{}
	for param, column := range map[string]string{
		"status":         "status",
		"reason":         "reason",
		"reporterId":     "reporter_id",
		"reportedUserId": "reported_user_id",
	} {
		if v := q.Get(param); v != "" {
			filters[column] = v
		}
	}

	page, pageSize := parsePagination(r)
	params := dbutil.NewPaginationParams(page, pageSize)

	out, err := h.reports.Search(r.Context(), filters, params.Limit, params.Offset)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if out == nil {
		out = []map[string]any{}
	}
	respondJSON(w, http.StatusOK, out)
}

// ReportsAgainstUser lists reports filed against a user, with the total count.
//
//	GET /api/user/reports/against/{userID}
func (h *Handlers) ReportsAgainstUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	out, err := h.reports.ListForUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	count, err := h.reports.CountForUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"reports":    out,
		"totalCount": count,
	})
}
