package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aws11/account-api/internal/domain"
	"github.com/aws11/account-api/internal/service/inquiry"
)

// inquiryColumns is the canonical select list for user_inquiries.
const inquiryColumns = `inquiry_id, user_id, subject, message, status, response, created_at, answered_at`

// InquiryRepo implements inquiry.Repository against PostgreSQL.
type InquiryRepo struct{ db *sql.DB }

// NewInquiryRepo creates a Postgres-backed inquiry repository.
func NewInquiryRepo(db *sql.DB) *InquiryRepo { return &InquiryRepo{db: db} }

func scanInquiry(row rowScanner) (*domain.UserInquiry, error) {
	q := &domain.UserInquiry{}
	var response sql.NullString
	var answeredAt sql.NullTime
	err := row.Scan(
		&q.InquiryID, &q.UserID, &q.Subject, &q.Message,
		&q.Status, &response, &q.CreatedAt, &answeredAt,
	)
	if err != nil {
		return nil, err
	}
	if response.Valid {
		q.Response = &response.String
	}
	if answeredAt.Valid {
		q.AnsweredAt = &answeredAt.Time
	}
	return q, nil
}

func (p *InquiryRepo) Create(ctx context.Context, userID, subject, message string) (*domain.UserInquiry, error) {
	q, err := scanInquiry(p.db.QueryRowContext(ctx, `
		INSERT INTO user_inquiries (user_id, subject, message, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING `+inquiryColumns,
		userID, subject, message,
	))
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return q, nil
}

func (p *InquiryRepo) Get(ctx context.Context, inquiryID int64) (*domain.UserInquiry, error) {
	q, err := scanInquiry(p.db.QueryRowContext(ctx,
		`SELECT `+inquiryColumns+` FROM user_inquiries WHERE inquiry_id = $1`,
		inquiryID,
	))
	if err == sql.ErrNoRows {
		return nil, inquiry.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return q, nil
}

func (p *InquiryRepo) ListByUser(ctx context.Context, userID string) ([]domain.UserInquiry, error) {
	return p.list(ctx,
		`SELECT `+inquiryColumns+` FROM user_inquiries WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
}

func (p *InquiryRepo) UpdateStatus(ctx context.Context, inquiryID int64, status domain.InquiryStatus, response *string) (*domain.UserInquiry, error) {
	// response is written as-is (nil clears); answered_at is stamped only on
	// a transition to answered and never cleared afterwards.
	q, err := scanInquiry(p.db.QueryRowContext(ctx, `
		UPDATE user_inquiries
		SET status = $1,
		    response = $2,
		    answered_at = CASE WHEN $1 = 'answered' THEN CURRENT_TIMESTAMP ELSE answered_at END
		WHERE inquiry_id = $3
		RETURNING `+inquiryColumns,
		status, response, inquiryID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inquiry %d: %w", inquiryID, inquiry.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return q, nil
}

func (p *InquiryRepo) ListPending(ctx context.Context, limit, offset int) ([]domain.UserInquiry, error) {
	return p.list(ctx, `
		SELECT `+inquiryColumns+` FROM user_inquiries
		WHERE status = 'pending'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
}

func (p *InquiryRepo) CountPending(ctx context.Context) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_inquiries WHERE status = 'pending'`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending inquiries: %w", err)
	}
	return n, nil
}

func (p *InquiryRepo) CountForUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_inquiries WHERE user_id = $1`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inquiries for user: %w", err)
	}
	return n, nil
}

func (p *InquiryRepo) list(ctx context.Context, query string, args ...any) ([]domain.UserInquiry, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []domain.UserInquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		out = append(out, *q)
	}
	return out, rows.Err()
}
