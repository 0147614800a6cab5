package api

import (
	"net/http"
	"strconv"

	"github.com/aws11/account-api/internal/service/inquiry"
	"github.com/aws11/account-api/internal/service/report"
	"github.com/aws11/account-api/internal/service/user"
)

// Handlers contains all HTTP handlers and their service dependencies.
type Handlers struct {
	reports   *report.Service
	inquiries *inquiry.Service
	users     *user.Service
	devMode   bool
}

// NewHandlers creates a Handlers instance. devMode controls whether internal
// error detail is echoed back to clients.
func NewHandlers(reports *report.Service, inquiries *inquiry.Service, users *user.Service, devMode bool) *Handlers {
	return &Handlers{
		reports:   reports,
		inquiries: inquiries,
		users:     users,
		devMode:   devMode,
	}
}

// parsePagination reads page/pageSize query params. Clamping happens in
// dbutil.NewPaginationParams; this only parses.
func parsePagination(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 50
	}
	return page, pageSize
}
