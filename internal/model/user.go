package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role adalah enum tertutup. Nilai role hanya dipercaya dari database,
// tidak pernah dari klaim token klien.
type Role string

const (
	RoleStudent Role = "student"
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleOwner, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Satisfies reports whether a principal holding role r meets a surface that
// requires the given role. Admin implicitly satisfies every owner-scoped
// surface but never a student-scoped one; other roles are disjoint.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case RoleAdmin:
		return r == RoleAdmin
	case RoleOwner:
		return r == RoleOwner || r == RoleAdmin
	case RoleStudent:
		return r == RoleStudent
	default:
		return false
	}
}

// Home is the landing page for a role, used as redirect target when a guard
// denies with insufficient role.
func (r Role) Home() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleOwner:
		return "/owner"
	case RoleStudent:
		return "/student"
	default:
		return "/"
	}
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:student" json:"role"`
	IsBlocked    bool      `gorm:"not null;default:false" json:"is_blocked"`
	Phone        *string   `gorm:"size:30" json:"phone,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
