package domain

import "time"

// UserRole enumerates the closed set of account roles.
type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// LoginType tags how the account was established.
type LoginType string

const (
	LoginTypeLocal  LoginType = "local"
	LoginTypeGoogle LoginType = "google"
)

// User represents an account. PasswordHash is empty for accounts that only
// support third-party login. Verification and reset tokens always travel with
// their paired expiry: both set or both nil.
type User struct {
	ID                   string     `json:"id"`
	Email                string     `json:"email"`
	FullName             string     `json:"fullName"`
	PasswordHash         string     `json:"-"`
	Verified             bool       `json:"verified"`
	VerificationToken    *string    `json:"-"`
	VerificationTokenExp *time.Time `json:"-"`
	ResetPasswordToken   *string    `json:"-"`
	ResetPasswordExp     *time.Time `json:"-"`
	Role                 UserRole   `json:"role"`
	LoginType            LoginType  `json:"loginType"`
	Avatar               *string    `json:"avatar,omitempty"`
	Phone                *string    `json:"phone,omitempty"`
	DOB                  *time.Time `json:"dob,omitempty"`
	Gender               *string    `json:"gender,omitempty"`
	Address              *string    `json:"address,omitempty"`
	Age                  *int       `json:"age,omitempty"`
	IsInstructorActive   bool       `json:"isInstructorActive"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	DeletedAt            *time.Time `json:"deletedAt,omitempty"`
}
