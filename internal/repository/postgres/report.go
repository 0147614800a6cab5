// Package postgres implements the service repository interfaces against
// PostgreSQL using database/sql with $N positional placeholders.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aws11/account-api/internal/domain"
	"github.com/aws11/account-api/internal/service/report"
)

// reportColumns is the canonical select list for user_reports.
const reportColumns = `report_id, reporter_id, reported_user_id, reason, description, status, created_at, reviewed_at`

// ReportRepo implements report.Repository against PostgreSQL.
type ReportRepo struct{ db *sql.DB }

// NewReportRepo creates a Postgres-backed report repository.
func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.UserReport, error) {
	r := &domain.UserReport{}
	var description sql.NullString
	var reviewedAt sql.NullTime
	err := row.Scan(
		&r.ReportID, &r.ReporterID, &r.ReportedUserID, &r.Reason,
		&description, &r.Status, &r.CreatedAt, &reviewedAt,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		r.Description = &description.String
	}
	if reviewedAt.Valid {
		r.ReviewedAt = &reviewedAt.Time
	}
	return r, nil
}

func (p *ReportRepo) Create(ctx context.Context, reporterID, reportedUserID string, reason domain.ReportReason, description *string) (*domain.UserReport, error) {
	r, err := scanReport(p.db.QueryRowContext(ctx, `
		INSERT INTO user_reports (reporter_id, reported_user_id, reason, description, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING `+reportColumns,
		reporterID, reportedUserID, reason, description,
	))
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return r, nil
}

func (p *ReportRepo) HasRecentPending(ctx context.Context, reporterID, reportedUserID string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_reports
			WHERE reporter_id = $1
			  AND reported_user_id = $2
			  AND status = 'pending'
			  AND created_at > NOW() - INTERVAL '24 hours'
		)`,
		reporterID, reportedUserID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check duplicate report: %w", err)
	}
	return exists, nil
}

func (p *ReportRepo) Get(ctx context.Context, reportID int64) (*domain.UserReport, error) {
	r, err := scanReport(p.db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM user_reports WHERE report_id = $1`,
		reportID,
	))
	if err == sql.ErrNoRows {
		return nil, report.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return r, nil
}

func (p *ReportRepo) ListByReporter(ctx context.Context, reporterID string) ([]domain.UserReport, error) {
	return p.list(ctx,
		`SELECT `+reportColumns+` FROM user_reports WHERE reporter_id = $1 ORDER BY created_at DESC`,
		reporterID,
	)
}

func (p *ReportRepo) ListForUser(ctx context.Context, reportedUserID string) ([]domain.UserReport, error) {
	return p.list(ctx,
		`SELECT `+reportColumns+` FROM user_reports WHERE reported_user_id = $1 ORDER BY created_at DESC`,
		reportedUserID,
	)
}

func (p *ReportRepo) UpdateStatus(ctx context.Context, reportID int64, status domain.ReportStatus) (*domain.UserReport, error) {
	// reviewed_at is stamped on every status change, not just "reviewed".
	r, err := scanReport(p.db.QueryRowContext(ctx, `
		UPDATE user_reports
		SET status = $1, reviewed_at = CURRENT_TIMESTAMP
		WHERE report_id = $2
		RETURNING `+reportColumns,
		status, reportID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report %d: %w", reportID, report.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update report status: %w", err)
	}
	return r, nil
}

func (p *ReportRepo) ListPending(ctx context.Context, limit, offset int) ([]domain.UserReport, error) {
	return p.list(ctx, `
		SELECT `+reportColumns+` FROM user_reports
		WHERE status = 'pending'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
}

func (p *ReportRepo) CountPending(ctx context.Context) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_reports WHERE status = 'pending'`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending reports: %w", err)
	}
	return n, nil
}

func (p *ReportRepo) CountForUser(ctx context.Context, reportedUserID string) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_reports WHERE reported_user_id = $1`,
		reportedUserID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count reports for user: %w", err)
	}
	return n, nil
}

func (p *ReportRepo) Search(ctx context.Context, conditions map[string]any, limit, offset int) ([]map[string]any, error) {
	clause, values := dbutilWhere(conditions)
	q := `SELECT ` + reportColumns + ` FROM user_reports `
	if clause != "" {
		q += clause + " "
	}
	q += fmt.Sprintf("ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(values)+1, len(values)+2)
	values = append(values, limit, offset)

	rows, err := p.db.QueryContext(ctx, q, values...)
	if err != nil {
		return nil, fmt.Errorf("search reports: %w", err)
	}
	defer rows.Close()
	return rowsToCamelMaps(rows)
}

func (p *ReportRepo) list(ctx context.Context, query string, args ...any) ([]domain.UserReport, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []domain.UserReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}
