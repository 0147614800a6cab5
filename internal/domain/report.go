package domain

import "time"

// ReportReason enumerates the accepted reasons for reporting a user.
type ReportReason string

const (
	ReasonSpam                 ReportReason = "spam"
	ReasonHarassment           ReportReason = "harassment"
	ReasonInappropriateContent ReportReason = "inappropriate_content"
	ReasonOther                ReportReason = "other"
)

// ReportReasons lists every accepted reason, in the order they are reported
// back to callers in validation errors.
var ReportReasons = []ReportReason{
	ReasonSpam, ReasonHarassment, ReasonInappropriateContent, ReasonOther,
}

// Valid reports whether r is one of the accepted reasons.
func (r ReportReason) Valid() bool {
	for _, v := range ReportReasons {
		if r == v {
			return true
		}
	}
	return false
}

// ReportStatus enumerates the lifecycle states of a report.
//
// The expected flow is pending -> reviewed -> resolved, but the services do
// not enforce forward-only transitions; any target status is accepted on
// update.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

// UserReport is a moderation report filed by one user against another.
type UserReport struct {
	ReportID       int64        `json:"reportId" db:"report_id"`
	ReporterID     string       `json:"reporterId" db:"reporter_id"`
	ReportedUserID string       `json:"reportedUserId" db:"reported_user_id"`
	Reason         ReportReason `json:"reason" db:"reason"`
	Description    *string      `json:"description" db:"description"`
	Status         ReportStatus `json:"status" db:"status"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	ReviewedAt     *time.Time   `json:"reviewedAt" db:"reviewed_at"`
}
