package domain

import (
	"context"
	"errors"
	"time"
)

// User roles
const (
	RoleStudent  = "student"
	RoleEmployer = "employer"
	RoleNGO      = "ngo"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleEmployer, RoleNGO:
		return true
	}
	return false
}

// ErrDuplicateUsername is returned by Create when the username is taken.
var ErrDuplicateUsername = errors.New("username already taken")

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       *string   `json:"bio,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Skills    []string  `json:"skills"`
	Interests []string  `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicProfile is the public view of a user together with their resume.
type PublicProfile struct {
	User
	Resume *Resume `json:"resume,omitempty"`
}

// ProfileUpdate carries the mutable subset of a user record. Username,
// password and role are not updatable through the profile endpoint.
type ProfileUpdate struct {
	Name      *string  `json:"name,omitempty"`
	Email     *string  `json:"email,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, plainPassword string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, updates *ProfileUpdate) (*User, error)
	GetPublicProfile(ctx context.Context, username string) (*PublicProfile, error)
}
