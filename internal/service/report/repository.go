package report

import (
	"context"

	"github.com/aws11/account-api/internal/domain"
)

// Repository defines the data access contract for reports.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a new pending report and returns the fully populated row.
	Create(ctx context.Context, reporterID, reportedUserID string, reason domain.ReportReason, description *string) (*domain.UserReport, error)

	// HasRecentPending reports whether a pending report from reporterID
	// against reportedUserID exists within the trailing 24 hours. The window
	// is strict: a report aged exactly 24 hours no longer counts.
	HasRecentPending(ctx context.Context, reporterID, reportedUserID string) (bool, error)

	// Get returns a single report. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, reportID int64) (*domain.UserReport, error)

	// ListByReporter returns all reports filed by reporterID, newest first.
	ListByReporter(ctx context.Context, reporterID string) ([]domain.UserReport, error)

	// ListForUser returns all reports filed against reportedUserID, newest first.
	ListForUser(ctx context.Context, reportedUserID string) ([]domain.UserReport, error)

	// UpdateStatus sets the status and stamps reviewed_at unconditionally.
	// Returns an error wrapping ErrNotFound (with the id in the message) when
	// the report doesn't exist.
	UpdateStatus(ctx context.Context, reportID int64, status domain.ReportStatus) (*domain.UserReport, error)

	// ListPending returns pending reports, newest first.
	ListPending(ctx context.Context, limit, offset int) ([]domain.UserReport, error)

	// CountPending returns the total number of pending reports.
	CountPending(ctx context.Context) (int, error)

	// CountForUser returns the number of reports of any status against
	// reportedUserID.
	CountForUser(ctx context.Context, reportedUserID string) (int, error)

	// Search returns report rows matching the given snake_case column
	// conditions, newest first, as camelCase keyed maps. Condition
	// whitelisting is the service's responsibility.
	Search(ctx context.Context, conditions map[string]any, limit, offset int) ([]map[string]any, error)
}
