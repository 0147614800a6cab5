// Package user implements account-profile reads and updates: nickname,
// phone, and bio validation plus first-login provisioning from token claims.
package user

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aws11/account-api/internal/dbutil"
	"github.com/aws11/account-api/internal/domain"
)

// maxBioLen bounds the free-text bio, in runes.
const maxBioLen = 500

// ProvisionInput carries the identity-provider claims used to create the
// account row on first contact.
type ProvisionInput struct {
	UserID   string
	Email    string
	Nickname string
}

// Service implements user-profile business logic. Stateless; safe for
// concurrent use.
type Service struct {
	repo Repository
}

// NewService creates a user service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetProfile returns the full profile for userID, or ErrNotFound.
func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// GetOrProvision returns the profile for the authenticated caller, creating
// the account row from token claims on first contact. A missing nickname
// claim falls back to a generated one so the row always satisfies the
// nickname constraint.
func (s *Service) GetOrProvision(ctx context.Context, in ProvisionInput) (*domain.UserProfile, error) {
	p, err := s.repo.GetProfile(ctx, in.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	nickname := in.Nickname
	if !dbutil.IsValidNickname(nickname) {
		nickname = "user_" + uuid.New().String()[:8]
	}
	if err := s.repo.Ensure(ctx, &domain.User{
		UserID:   in.UserID,
		Email:    in.Email,
		Nickname: nickname,
		Status:   domain.UserActive,
	}); err != nil {
		return nil, err
	}
	return s.repo.GetProfile(ctx, in.UserID)
}

// UpdateProfile validates and applies the non-nil fields.
func (s *Service) UpdateProfile(ctx context.Context, userID string, f UpdateFields) (*domain.UserProfile, error) {
	if f.Nickname != nil {
		if !dbutil.IsValidNickname(*f.Nickname) {
			return nil, &ValidationError{Msg: "nickname must be 2-20 characters of letters, digits, or underscore"}
		}
		taken, err := s.repo.NicknameExists(ctx, *f.Nickname, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNicknameTaken
		}
	}
	if f.PhoneNumber != nil && !dbutil.IsValidPhoneNumber(*f.PhoneNumber) {
		return nil, &ValidationError{Msg: "invalid phone number"}
	}
	if f.Bio != nil && utf8.RuneCountInString(*f.Bio) > maxBioLen {
		return nil, &ValidationError{Msg: "bio must not exceed 500 characters"}
	}

	return s.repo.UpdateProfile(ctx, userID, f)
}
