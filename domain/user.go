package domain

import "time"

const (
	RoleMember   = "member"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// User is an organization member account.
type User struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Email    string `json:"email" yaml:"email" validate:"required,email"`
	Role     string `json:"role" yaml:"role" validate:"required,oneof=member reviewer admin"`
	Division string `json:"division,omitempty" yaml:"division,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// CanReview reports whether the user may resolve pending approvals.
func (u *User) CanReview() bool {
	return u.Role == RoleReviewer || u.Role == RoleAdmin
}

// CanArchive reports whether the user may archive approved entities.
func (u *User) CanArchive() bool {
	return u.Role == RoleAdmin
}

type ListUsersFilter struct {
	Q        string   `mapstructure:"q" validate:"omitempty"`
	Role     string   `mapstructure:"role" validate:"omitempty,oneof=member reviewer admin"`
	Division string   `mapstructure:"division" validate:"omitempty"`
	OrderBy  []string `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size     int      `mapstructure:"size" validate:"omitempty"`
	Offset   int      `mapstructure:"offset" validate:"omitempty"`
}
