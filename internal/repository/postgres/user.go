package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aws11/account-api/internal/domain"
	"github.com/aws11/account-api/internal/service/user"
)

// profileColumns is the canonical select list for user profiles.
const profileColumns = `user_id, email, nickname, profile_image_url, bio, phone_number, status, created_at, updated_at`

// UserRepo implements user.Repository against PostgreSQL.
type UserRepo struct{ db *sql.DB }

// NewUserRepo creates a Postgres-backed user repository.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func scanProfile(row rowScanner) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	var imageURL, bio, phone sql.NullString
	err := row.Scan(
		&p.UserID, &p.Email, &p.Nickname, &imageURL, &bio, &phone,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		p.ProfileImageURL = &imageURL.String
	}
	if bio.Valid {
		p.Bio = &bio.String
	}
	if phone.Valid {
		p.PhoneNumber = &phone.String
	}
	return p, nil
}

func (r *UserRepo) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+` FROM users
		WHERE user_id = $1 AND status != 'deleted'`,
		userID,
	))
	if err == sql.ErrNoRows {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *UserRepo) Ensure(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, email, nickname, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING`,
		u.UserID, u.Email, u.Nickname, u.Status,
	)
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

func (r *UserRepo) NicknameExists(ctx context.Context, nickname, excludeUserID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE nickname = $1 AND user_id != $2)`,
		nickname, excludeUserID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check nickname: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, userID string, f user.UpdateFields) (*domain.UserProfile, error) {
	sets := []string{}
	args := []any{}
	idx := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}
	if f.Nickname != nil {
		add("nickname", *f.Nickname)
	}
	if f.Bio != nil {
		add("bio", *f.Bio)
	}
	if f.PhoneNumber != nil {
		add("phone_number", *f.PhoneNumber)
	}
	if f.ProfileImageURL != nil {
		add("profile_image_url", *f.ProfileImageURL)
	}
	if len(sets) == 0 {
		return r.GetProfile(ctx, userID)
	}
	sets = append(sets, "updated_at = NOW()")

	q := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d AND status != 'deleted' RETURNING %s`,
		strings.Join(sets, ", "), idx, profileColumns)
	args = append(args, userID)

	p, err := scanProfile(r.db.QueryRowContext(ctx, q, args...))
	if err == sql.ErrNoRows {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}
