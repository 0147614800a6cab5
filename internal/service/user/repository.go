package user

import (
	"context"

	"github.com/aws11/account-api/internal/domain"
)

// Repository defines the data access contract for user accounts.
// Implementations must be safe for concurrent use.
type Repository interface {
	// GetProfile returns the full profile for userID, excluding deleted
	// accounts. Returns ErrNotFound if no row matches.
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	// Ensure inserts the account row if it doesn't exist yet; an existing
	// row is left untouched.
	Ensure(ctx context.Context, u *domain.User) error

	// NicknameExists reports whether another user already holds nickname.
	NicknameExists(ctx context.Context, nickname, excludeUserID string) (bool, error)

	// UpdateProfile applies the non-nil fields and returns the updated
	// profile. Returns ErrNotFound when the user doesn't exist.
	UpdateProfile(ctx context.Context, userID string, f UpdateFields) (*domain.UserProfile, error)
}

// UpdateFields holds the mutable profile fields. Nil fields are not applied.
type UpdateFields struct {
	Nickname        *string `json:"nickname"`
	Bio             *string `json:"bio"`
	PhoneNumber     *string `json:"phoneNumber"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
