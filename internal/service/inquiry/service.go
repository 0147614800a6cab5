// Package inquiry implements the support-inquiry business rules: subject and
// message validation, trimmed persistence, and the answered_at stamping rule
// on status updates.
package inquiry

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/aws11/account-api/internal/domain"
)

// Length bounds are checked on the raw input before trimming, in runes.
const (
	maxSubjectLen = 200
	maxMessageLen = 2000
)

// CreateInput holds the caller-supplied fields for submitting an inquiry.
type CreateInput struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Service implements inquiry business logic. Stateless; safe for concurrent
// use by any number of callers.
type Service struct {
	repo Repository
}

// NewService creates an inquiry service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new inquiry in pending status. Checks run
// in order: subject presence, subject bound, message presence, message
// bound. The trimmed subject and message are what gets stored.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.UserInquiry, error) {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return nil, &ValidationError{Msg: "subject is required"}
	}
	if utf8.RuneCountInString(in.Subject) > maxSubjectLen {
		return nil, &ValidationError{Msg: "subject must not exceed 200 characters"}
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, &ValidationError{Msg: "message is required"}
	}
	if utf8.RuneCountInString(in.Message) > maxMessageLen {
		return nil, &ValidationError{Msg: "message must not exceed 2000 characters"}
	}

	return s.repo.Create(ctx, userID, subject, message)
}

// Get returns a single inquiry, or ErrNotFound.
func (s *Service) Get(ctx context.Context, inquiryID int64) (*domain.UserInquiry, error) {
	return s.repo.Get(ctx, inquiryID)
}

// ListByUser returns the inquiries submitted by userID, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.UserInquiry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus sets the inquiry status and response. The response parameter
// is written as-is: passing nil clears any prior response, so callers who
// want to keep earlier response text must resupply it. answered_at is
// stamped only on a transition to answered and survives later transitions.
func (s *Service) UpdateStatus(ctx context.Context, inquiryID int64, status domain.InquiryStatus, response *string) (*domain.UserInquiry, error) {
	return s.repo.UpdateStatus(ctx, inquiryID, status, response)
}

// ListPending returns pending inquiries with the total pending count,
// newest first.
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]domain.UserInquiry, int, error) {
	total, err := s.repo.CountPending(ctx)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.repo.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// CountForUser returns how many inquiries userID has submitted.
func (s *Service) CountForUser(ctx context.Context, userID string) (int, error) {
	return s.repo.CountForUser(ctx, userID)
}
