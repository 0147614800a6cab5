// Package report implements the moderation-report business rules.
//
// The service layer owns all validation: self-report prevention, the closed
// reason enumeration, description bounds, and the trailing 24-hour
// duplicate window. It depends on the Repository interface defined in this
// package and never imports from the api layer.
//
// The repository implementation lives in repository/postgres.
package report
