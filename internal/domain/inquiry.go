package domain

import "time"

// InquiryStatus enumerates the lifecycle states of a support inquiry.
//
// The expected flow is pending -> answered -> closed. Like report statuses,
// transitions are not enforced; only the answered_at stamping rule is.
type InquiryStatus string

const (
	InquiryPending  InquiryStatus = "pending"
	InquiryAnswered InquiryStatus = "answered"
	InquiryClosed   InquiryStatus = "closed"
)

// UserInquiry is a support inquiry submitted by a user.
//
// AnsweredAt is set exactly when a transition to answered is recorded and is
// never cleared afterwards, even if the status later moves to closed.
type UserInquiry struct {
	InquiryID  int64         `json:"inquiryId" db:"inquiry_id"`
	UserID     string        `json:"userId" db:"user_id"`
	Subject    string        `json:"subject" db:"subject"`
	Message    string        `json:"message" db:"message"`
	Status     InquiryStatus `json:"status" db:"status"`
	Response   *string       `json:"response" db:"response"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	AnsweredAt *time.Time    `json:"answeredAt" db:"answered_at"`
}
