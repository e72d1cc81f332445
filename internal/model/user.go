package model

import "time"

// Role is the access level assigned to a user profile.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleManager Role = "manager"
)

// User represents the current user profile.
type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	Role            Role      `json:"role"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	Permissions     []string  `json:"permissions"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
	LastLogin       time.Time `json:"lastLogin,omitzero"`
}

// DefaultUser returns the hardcoded identity used when no profile has
// been persisted yet.
func DefaultUser() User {
	return User{
		ID:              1,
		Username:        "MFakheem",
		Role:            RoleUser,
		IsAuthenticated: true,
		Permissions:     []string{},
	}
}

// UserUpdate carries a shallow profile merge. Nil fields are untouched.
type UserUpdate struct {
	Username    *string   `json:"username,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Role        *Role     `json:"role,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

// Apply merges the non-nil fields of the update into the user.
func (u *UserUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
	if u.Permissions != nil {
		user.Permissions = *u.Permissions
	}
}
