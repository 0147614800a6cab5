package report

import (
	"context"
	"unicode/utf8"

	"github.com/aws11/account-api/internal/domain"
)

// maxDescriptionLen bounds the optional free-text description, in runes.
const maxDescriptionLen = 1000

// CreateInput holds the caller-supplied fields for filing a report. The
// reporter identity always comes from the authenticated context, never from
// the request body.
type CreateInput struct {
	ReportedUserID string `json:"reportedUserId"`
	Reason         string `json:"reason"`
	Description    string `json:"description"`
}

// Service implements report business logic. It is a stateless mediator: all
// entity state lives in the store, so a single Service is safe for
// arbitrarily many concurrent callers.
type Service struct {
	repo Repository
}

// NewService creates a report service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new report in pending status.
//
// Checks run in order and the first failure wins: self-report, reason
// enumeration, description bound, duplicate window. Nothing is written
// before all checks pass.
//
// The duplicate check and the insert are two separate round trips with no
// transaction around them, so two concurrent creates for the same pair can
// both land. That race is inherited behavior; closing it would take a
// partial unique index plus conflict handling.
func (s *Service) Create(ctx context.Context, reporterID string, in CreateInput) (*domain.UserReport, error) {
	if reporterID == in.ReportedUserID {
		return nil, ErrSelfReport
	}

	reason := domain.ReportReason(in.Reason)
	if !reason.Valid() {
		return nil, &InvalidReasonError{Reason: in.Reason, Allowed: domain.ReportReasons}
	}

	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return nil, &ValidationError{Msg: "description must not exceed 1000 characters"}
	}

	dup, err := s.repo.HasRecentPending(ctx, reporterID, in.ReportedUserID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicate
	}

	var description *string
	if in.Description != "" {
		description = &in.Description
	}
	return s.repo.Create(ctx, reporterID, in.ReportedUserID, reason, description)
}

// CheckDuplicate reports whether a pending report from reporterID against
// reportedUserID exists within the trailing 24-hour window.
func (s *Service) CheckDuplicate(ctx context.Context, reporterID, reportedUserID string) (bool, error) {
	return s.repo.HasRecentPending(ctx, reporterID, reportedUserID)
}

// Get returns a single report, or ErrNotFound.
func (s *Service) Get(ctx context.Context, reportID int64) (*domain.UserReport, error) {
	return s.repo.Get(ctx, reportID)
}

// ListByReporter returns the reports filed by reporterID, newest first.
func (s *Service) ListByReporter(ctx context.Context, reporterID string) ([]domain.UserReport, error) {
	return s.repo.ListByReporter(ctx, reporterID)
}

// ListForUser returns the reports filed against reportedUserID, newest first.
func (s *Service) ListForUser(ctx context.Context, reportedUserID string) ([]domain.UserReport, error) {
	return s.repo.ListForUser(ctx, reportedUserID)
}

// UpdateStatus sets the report status and stamps reviewed_at to now,
// whatever the target status is. Forward-only transitions are a convention,
// not an invariant: any status value the store accepts goes through.
func (s *Service) UpdateStatus(ctx context.Context, reportID int64, status domain.ReportStatus) (*domain.UserReport, error) {
	return s.repo.UpdateStatus(ctx, reportID, status)
}

// ListPending returns pending reports with the total pending count, newest
// first.
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]domain.UserReport, int, error) {
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

// CountForUser returns how many reports of any status target reportedUserID.
func (s *Service) CountForUser(ctx context.Context, reportedUserID string) (int, error) {
	return s.repo.CountForUser(ctx, reportedUserID)
}

// searchableFields whitelists the columns the dynamic search may filter on.
var searchableFields = map[string]bool{
	"status":           true,
	"reason":           true,
	"reporter_id":      true,
	"reported_user_id": true,
}

// Search returns reports matching the given filters as camelCase row maps.
// Unknown filter fields are dropped rather than rejected.
func (s *Service) Search(ctx context.Context, filters map[string]any, limit, offset int) ([]map[string]any, error) {
	conditions := make(map[string]any, len(filters))
	for k, v := range filters {
		if searchableFields[k] {
			conditions[k] = v
		}
	}
	return s.repo.Search(ctx, conditions, limit, offset)
}
