package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws11/account-api/internal/domain"
)

// Sentinel errors for the report service layer.
var (
	ErrSelfReport = errors.New("users cannot report themselves")
	ErrDuplicate  = errors.New("a report for this user already exists within the last 24 hours")
	ErrNotFound   = errors.New("report not found")
)

// InvalidReasonError is returned when a report reason is outside the closed
// enumeration. It carries the offending value and the allowed set.
type InvalidReasonError struct {
	Reason  string
	Allowed []domain.ReportReason
}

func (e *InvalidReasonError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, r := range e.Allowed {
		allowed[i] = string(r)
	}
	return fmt.Sprintf("invalid report reason: %s. must be one of: %s",
		e.Reason, strings.Join(allowed, ", "))
}

// ValidationError is returned when report input fails a field-level bound.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
