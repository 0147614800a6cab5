package inquiry

import (
	"context"

	"github.com/aws11/account-api/internal/domain"
)

// Repository defines the data access contract for inquiries.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a new pending inquiry and returns the fully populated row.
	Create(ctx context.Context, userID, subject, message string) (*domain.UserInquiry, error)

	// Get returns a single inquiry. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, inquiryID int64) (*domain.UserInquiry, error)

	// ListByUser returns all inquiries submitted by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.UserInquiry, error)

	// UpdateStatus sets status and response (nil clears any prior response)
	// and stamps answered_at only when the new status is answered; a set
	// answered_at is never cleared. Returns an error wrapping ErrNotFound
	// when the inquiry doesn't exist.
	UpdateStatus(ctx context.Context, inquiryID int64, status domain.InquiryStatus, response *string) (*domain.UserInquiry, error)

	// ListPending returns pending inquiries, newest first.
	ListPending(ctx context.Context, limit, offset int) ([]domain.UserInquiry, error)

	// CountPending returns the total number of pending inquiries.
	CountPending(ctx context.Context) (int, error)

	// CountForUser returns the number of inquiries submitted by userID.
	CountForUser(ctx context.Context, userID string) (int, error)
}
