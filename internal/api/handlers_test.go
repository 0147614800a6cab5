package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws11/account-api/internal/api"
	"github.com/aws11/account-api/internal/auth"
	"github.com/aws11/account-api/internal/domain"
	"github.com/aws11/account-api/internal/service/inquiry"
	"github.com/aws11/account-api/internal/service/report"
	"github.com/aws11/account-api/internal/service/user"
)

// memReportRepo is an in-memory report.Repository for handler tests.
type memReportRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.UserReport
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{nextID: 1, rows: map[int64]*domain.UserReport{}}
}

func (m *memReportRepo) Create(_ context.Context, reporterID, reportedUserID string, reason domain.ReportReason, description *string) (*domain.UserReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := &domain.UserReport{
		ReportID:       m.nextID,
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		Reason:         reason,
		Description:    description,
		Status:         domain.ReportPending,
		CreatedAt:      time.Now(),
	}
	m.rows[m.nextID] = r
	m.nextID++
	out := *r
	return &out, nil
}

func (m *memReportRepo) HasRecentPending(_ context.Context, reporterID, reportedUserID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ReporterID == reporterID && r.ReportedUserID == reportedUserID &&
			r.Status == domain.ReportPending && time.Since(r.CreatedAt) < 24*time.Hour {
			return true, nil
		}
	}
	return false, nil
}

func (m *memReportRepo) Get(_ context.Context, reportID int64) (*domain.UserReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[reportID]
	if !ok {
		return nil, fmt.Errorf("report %d: %w", reportID, report.ErrNotFound)
	}
	out := *r
	return &out, nil
}

func (m *memReportRepo) ListByReporter(_ context.Context, reporterID string) ([]domain.UserReport, error) {
	return m.filter(func(r *domain.UserReport) bool { return r.ReporterID == reporterID }), nil
}

func (m *memReportRepo) ListForUser(_ context.Context, reportedUserID string) ([]domain.UserReport, error) {
	return m.filter(func(r *domain.UserReport) bool { return r.ReportedUserID == reportedUserID }), nil
}

func (m *memReportRepo) UpdateStatus(_ context.Context, reportID int64, status domain.ReportStatus) (*domain.UserReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[reportID]
	if !ok {
		return nil, fmt.Errorf("report %d: %w", reportID, report.ErrNotFound)
	}
	now := time.Now()
	r.Status = status
	r.ReviewedAt = &now
	out := *r
	return &out, nil
}

func (m *memReportRepo) ListPending(_ context.Context, limit, offset int) ([]domain.UserReport, error) {
	pending := m.filter(func(r *domain.UserReport) bool { return r.Status == domain.ReportPending })
	if offset >= len(pending) {
		return nil, nil
	}
	pending = pending[offset:]
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (m *memReportRepo) CountPending(_ context.Context) (int, error) {
	return len(m.filter(func(r *domain.UserReport) bool { return r.Status == domain.ReportPending })), nil
}

func (m *memReportRepo) CountForUser(_ context.Context, reportedUserID string) (int, error) {
	return len(m.filter(func(r *domain.UserReport) bool { return r.ReportedUserID == reportedUserID })), nil
}

func (m *memReportRepo) Search(_ context.Context, conditions map[string]any, limit, offset int) ([]map[string]any, error) {
	rows := m.filter(func(r *domain.UserReport) bool {
		for col, v := range conditions {
			s, _ := v.(string)
			switch col {
			case "status":
				if string(r.Status) != s {
					return false
				}
			case "reason":
				if string(r.Reason) != s {
					return false
				}
			case "reporter_id":
				if r.ReporterID != s {
					return false
				}
			case "reported_user_id":
				if r.ReportedUserID != s {
					return false
				}
			}
		}
		return true
	})
	var out []map[string]any
	for _, r := range rows {
		out = append(out, map[string]any{
			"reportId":       r.ReportID,
			"reporterId":     r.ReporterID,
			"reportedUserId": r.ReportedUserID,
			"reason":         string(r.Reason),
			"status":         string(r.Status),
		})
	}
	return out, nil
}

func (m *memReportRepo) filter(keep func(*domain.UserReport) bool) []domain.UserReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.UserReport
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReportID > out[j].ReportID })
	return out
}

// memInquiryRepo is an in-memory inquiry.Repository.
type memInquiryRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.UserInquiry
}

func newMemInquiryRepo() *memInquiryRepo {
	return &memInquiryRepo{nextID: 1, rows: map[int64]*domain.UserInquiry{}}
}

func (m *memInquiryRepo) Create(_ context.Context, userID, subject, message string) (*domain.UserInquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := &domain.UserInquiry{
		InquiryID: m.nextID,
		UserID:    userID,
		Subject:   subject,
		Message:   message,
		Status:    domain.InquiryPending,
		CreatedAt: time.Now(),
	}
	m.rows[m.nextID] = q
	m.nextID++
	out := *q
	return &out, nil
}

func (m *memInquiryRepo) Get(_ context.Context, inquiryID int64) (*domain.UserInquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[inquiryID]
	if !ok {
		return nil, fmt.Errorf("inquiry %d: %w", inquiryID, inquiry.ErrNotFound)
	}
	out := *q
	return &out, nil
}

func (m *memInquiryRepo) ListByUser(_ context.Context, userID string) ([]domain.UserInquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.UserInquiry
	for _, q := range m.rows {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InquiryID > out[j].InquiryID })
	return out, nil
}

func (m *memInquiryRepo) UpdateStatus(_ context.Context, inquiryID int64, status domain.InquiryStatus, response *string) (*domain.UserInquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[inquiryID]
	if !ok {
		return nil, fmt.Errorf("inquiry %d: %w", inquiryID, inquiry.ErrNotFound)
	}
	q.Status = status
	q.Response = response
	if status == domain.InquiryAnswered && q.AnsweredAt == nil {
		now := time.Now()
		q.AnsweredAt = &now
	}
	out := *q
	return &out, nil
}

func (m *memInquiryRepo) ListPending(_ context.Context, limit, offset int) ([]domain.UserInquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.UserInquiry
	for _, q := range m.rows {
		if q.Status == domain.InquiryPending {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InquiryID > out[j].InquiryID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memInquiryRepo) CountPending(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, q := range m.rows {
		if q.Status == domain.InquiryPending {
			n++
		}
	}
	return n, nil
}

func (m *memInquiryRepo) CountForUser(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, q := range m.rows {
		if q.UserID == userID {
			n++
		}
	}
	return n, nil
}

// memUserRepo is an in-memory user.Repository.
type memUserRepo struct {
	mu   sync.Mutex
	rows map[string]*domain.UserProfile
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: map[string]*domain.UserProfile{}}
}

func (m *memUserRepo) GetProfile(_ context.Context, userID string) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[userID]
	if !ok || p.Status == domain.UserDeleted {
		return nil, fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (m *memUserRepo) Ensure(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[u.UserID]; ok {
		return nil
	}
	now := time.Now()
	m.rows[u.UserID] = &domain.UserProfile{
		UserID:    u.UserID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Status:    u.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (m *memUserRepo) NicknameExists(_ context.Context, nickname, excludeUserID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.rows {
		if id != excludeUserID && p.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) UpdateProfile(_ context.Context, userID string, f user.UpdateFields) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, user.ErrNotFound)
	}
	if f.Nickname != nil {
		p.Nickname = *f.Nickname
	}
	if f.Bio != nil {
		p.Bio = f.Bio
	}
	if f.PhoneNumber != nil {
		p.PhoneNumber = f.PhoneNumber
	}
	if f.ProfileImageURL != nil {
		p.ProfileImageURL = f.ProfileImageURL
	}
	p.UpdatedAt = time.Now()
	out := *p
	return &out, nil
}

// testEnv is a fully wired server over in-memory repositories.
type testEnv struct {
	srv      http.Handler
	verifier *auth.Verifier
	reports  *memReportRepo
	users    *memUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	reports := newMemReportRepo()
	inquiries := newMemInquiryRepo()
	users := newMemUserRepo()

	h := api.NewHandlers(
		report.NewService(reports),
		inquiry.NewService(inquiries),
		user.NewService(users),
		false,
	)
	verifier := auth.NewVerifier("test-secret", "account-api")
	srv := api.NewServer(h, api.NewHealthChecker(nil), verifier, []string{"*"})

	return &testEnv{srv: srv.Handler(), verifier: verifier, reports: reports, users: users}
}

func (e *testEnv) token(t *testing.T, userID string) string {
	t.Helper()
	tok, err := e.verifier.Sign(auth.Claims{UserID: userID, Email: userID + "@example.com", Nickname: "nick_" + userID}, time.Hour)
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into), "body: %s", rec.Body.String())
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/user/reports", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/user/reports", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthNoAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "degraded", body["status"]) // no database wired in tests
	assert.NotEmpty(t, body["version"])
}

func TestCreateReportFlow(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
		"reportedUserId": "bob",
		"reason":         "spam",
		"description":    "unsolicited links",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.UserReport
	decode(t, rec, &created)
	assert.Equal(t, "alice", created.ReporterID)
	assert.Equal(t, "bob", created.ReportedUserID)
	assert.Equal(t, domain.ReportPending, created.Status)
	require.NotNil(t, created.Description)
	assert.Equal(t, "unsolicited links", *created.Description)

	// Second report against the same user within 24h conflicts.
	rec = env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
		"reportedUserId": "bob",
		"reason":         "harassment",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The reporter identity comes from the token, never the body.
	rec = env.do(t, http.MethodGet, "/api/user/reports", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []domain.UserReport
	decode(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ReportID, mine[0].ReportID)
}

func TestCreateReportValidation(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "alice")

	t.Run("self report", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
			"reportedUserId": "alice",
			"reason":         "spam",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		decode(t, rec, &body)
		assert.Equal(t, "ValidationError", body["error"])
	})

	t.Run("invalid reason", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
			"reportedUserId": "bob",
			"reason":         "because",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		decode(t, rec, &body)
		assert.Contains(t, body["message"], "because")
	})

	t.Run("description too long", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
			"reportedUserId": "bob",
			"reason":         "spam",
			"description":    strings.Repeat("a", 1001),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetReportNotFound(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "alice")

	rec := env.do(t, http.MethodGet, "/api/user/reports/999", tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/user/reports/abc", tok, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateReportStatus(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "mod")

	created := env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
		"reportedUserId": "bob", "reason": "other",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var r domain.UserReport
	decode(t, created, &r)

	rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/user/reports/%d/status", r.ReportID), tok, map[string]any{
		"status": "reviewed",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.UserReport
	decode(t, rec, &updated)
	assert.Equal(t, domain.ReportReviewed, updated.Status)
	assert.NotNil(t, updated.ReviewedAt)

	rec = env.do(t, http.MethodPut, fmt.Sprintf("/api/user/reports/%d/status", r.ReportID), tok, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPendingReportsEnvelope(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		tok := env.token(t, fmt.Sprintf("reporter%d", i))
		rec := env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
			"reportedUserId": "bob", "reason": "spam",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	tok := env.token(t, "mod")
	rec := env.do(t, http.MethodGet, "/api/user/reports/pending?page=1&pageSize=2", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data       []domain.UserReport `json:"data"`
		Pagination struct {
			Page       int  `json:"page"`
			TotalItems int  `json:"totalItems"`
			TotalPages int  `json:"totalPages"`
			HasNext    bool `json:"hasNext"`
		} `json:"pagination"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 3, body.Pagination.TotalItems)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNext)
}

func TestSearchReports(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/user/reports", tok, map[string]any{
		"reportedUserId": "bob", "reason": "spam",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/user/reports/search?status=pending&reportedUserId=bob", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]any
	decode(t, rec, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob", rows[0]["reportedUserId"])

	// No matches yields an empty array, not null.
	rec = env.do(t, http.MethodGet, "/api/user/reports/search?status=resolved", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestReportsAgainstUser(t *testing.T) {
	env := newTestEnv(t)

	for _, reporter := range []string{"a", "b"} {
		rec := env.do(t, http.MethodPost, "/api/user/reports", env.token(t, reporter), map[string]any{
			"reportedUserId": "bob", "reason": "spam",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/user/reports/against/bob", env.token(t, "mod"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Reports    []domain.UserReport `json:"reports"`
		TotalCount int                 `json:"totalCount"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.Reports, 2)
	assert.Equal(t, 2, body.TotalCount)
}

func TestInquiryFlow(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/user/inquiries", tok, map[string]any{
		"subject": "  billing question  ",
		"message": "was I charged twice?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var q domain.UserInquiry
	decode(t, rec, &q)
	assert.Equal(t, "billing question", q.Subject)
	assert.Equal(t, domain.InquiryPending, q.Status)
	assert.Nil(t, q.AnsweredAt)

	answer := "no, the second line is a hold"
	rec = env.do(t, http.MethodPut, fmt.Sprintf("/api/user/inquiries/%d/status", q.InquiryID), tok, map[string]any{
		"status":   "answered",
		"response": answer,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var answered domain.UserInquiry
	decode(t, rec, &answered)
	assert.Equal(t, domain.InquiryAnswered, answered.Status)
	require.NotNil(t, answered.Response)
	assert.Equal(t, answer, *answered.Response)
	assert.NotNil(t, answered.AnsweredAt)

	// Closing without a response clears it but keeps answeredAt.
	rec = env.do(t, http.MethodPut, fmt.Sprintf("/api/user/inquiries/%d/status", q.InquiryID), tok, map[string]any{
		"status": "closed",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var closed domain.UserInquiry
	decode(t, rec, &closed)
	assert.Nil(t, closed.Response)
	assert.NotNil(t, closed.AnsweredAt)
}

func TestInquiryValidation(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/user/inquiries", tok, map[string]any{
		"subject": "", "message": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/user/inquiries/404", tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileProvisionAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, "alice")

	rec := env.do(t, http.MethodGet, "/api/user/profile", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var p domain.UserProfile
	decode(t, rec, &p)
	assert.Equal(t, "alice", p.UserID)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Equal(t, "nick_alice", p.Nickname)
	assert.Equal(t, domain.UserActive, p.Status)

	rec = env.do(t, http.MethodPut, "/api/user/profile", tok, map[string]any{
		"nickname": "new_alice",
		"bio":      "hello there",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &p)
	assert.Equal(t, "new_alice", p.Nickname)
	require.NotNil(t, p.Bio)
	assert.Equal(t, "hello there", *p.Bio)

	t.Run("nickname taken", func(t *testing.T) {
		other := env.token(t, "eve")
		rec := env.do(t, http.MethodGet, "/api/user/profile", other, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodPut, "/api/user/profile", other, map[string]any{
			"nickname": "new_alice",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid phone", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/user/profile", tok, map[string]any{
			"phoneNumber": "not-a-phone",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
