package domain

import "time"

// UserStatus enumerates the lifecycle states of a user account.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserDeleted  UserStatus = "deleted"
)

// User represents an account row. User IDs are opaque strings issued by the
// identity provider (the token subject) and never change.
type User struct {
	UserID    string     `json:"userId" db:"user_id"`
	Email     string     `json:"email" db:"email"`
	Nickname  string     `json:"nickname" db:"nickname"`
	Status    UserStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserProfile is the full profile view returned to API consumers, combining
// the account row with its optional profile fields.
type UserProfile struct {
	UserID          string     `json:"userId" db:"user_id"`
	Email           string     `json:"email" db:"email"`
	Nickname        string     `json:"nickname" db:"nickname"`
	ProfileImageURL *string    `json:"profileImageUrl" db:"profile_image_url"`
	Bio             *string    `json:"bio" db:"bio"`
	PhoneNumber     *string    `json:"phoneNumber" db:"phone_number"`
	Status          UserStatus `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}
