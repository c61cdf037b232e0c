package dto

import (
	"time"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// UserResponse is the sanitized view of a user. Password hash, verification
// token and reset token (and their expiries) never appear here.
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"fullName"`
	Verified           bool       `json:"verified"`
	Role               string     `json:"role"`
	LoginType          string     `json:"loginType"`
	Avatar             *string    `json:"avatar,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	DOB                *time.Time `json:"dob,omitempty"`
	Gender             *string    `json:"gender,omitempty"`
	Address            *string    `json:"address,omitempty"`
	Age                *int       `json:"age,omitempty"`
	IsInstructorActive bool       `json:"isInstructorActive"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ToUserResponse converts a domain user into its sanitized view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Email:              user.Email,
		FullName:           user.FullName,
		Verified:           user.Verified,
		Role:               string(user.Role),
		LoginType:          string(user.LoginType),
		Avatar:             user.Avatar,
		Phone:              user.Phone,
		DOB:                user.DOB,
		Gender:             user.Gender,
		Address:            user.Address,
		Age:                user.Age,
		IsInstructorActive: user.IsInstructorActive,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

// UpdateUserRequest defines the profile fields a user may change. Pointers
// differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	FullName *string    `json:"fullName"`
	Avatar   *string    `json:"avatar"`
	Phone    *string    `json:"phone"`
	DOB      *time.Time `json:"dob"`
	Gender   *string    `json:"gender"`
	Address  *string    `json:"address"`
	Age      *int       `json:"age"`
}

// UpdateUserRoleRequest is the body for the administrator role change.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user instructor admin"`
}

// ListUsersResponse wraps a paginated user listing.
type ListUsersResponse struct {
	Items      []UserResponse `json:"items"`
	Pagination Pagination     `json:"pagination"`
}
