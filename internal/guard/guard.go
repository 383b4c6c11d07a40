package guard

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequireRole admits p when its role satisfies at least one of the required
// roles (hirarki admin-atas-owner ada di model.Role.Satisfies, bukan di
// call site). A nil principal denies as not authenticated.
func RequireRole(p *Principal, required ...model.Role) error {
	if p == nil {
		return apperror.ErrNotAuthenticated
	}
	for _, role := range required {
		if p.Role.Satisfies(role) {
			return nil
		}
	}
	return apperror.ErrInsufficientRole
}

func RequireAdmin(p *Principal) error { return RequireRole(p, model.RoleAdmin) }

// RequireOwner admits owners and, via the hierarchy rule, admins.
func RequireOwner(p *Principal) error { return RequireRole(p, model.RoleOwner) }

func RequireStudent(p *Principal) error { return RequireRole(p, model.RoleStudent) }

// Guard composes role checks with resource-scoped ownership checks.
type Guard struct {
	ownership *Ownership
	profiles  StudentProfileStore
}

func NewGuard(ownership *Ownership, profiles StudentProfileStore) *Guard {
	return &Guard{ownership: ownership, profiles: profiles}
}

func (g *Guard) Ownership() *Ownership { return g.ownership }

// RequireHostelOwner admits p for hostelID iff p is an admin (bypass, no
// ownership lookup performed) or an owner that actually owns the hostel.
func (g *Guard) RequireHostelOwner(ctx context.Context, p *Principal, hostelID uuid.UUID) error {
	if err := RequireOwner(p); err != nil {
		return err
	}
	if p.Role == model.RoleAdmin {
		return nil
	}
	if !g.ownership.OwnsHostel(ctx, p.ID, hostelID) {
		return apperror.ErrNotOwner
	}
	return nil
}

// RequireStudentWithProfile admits students and returns their unique
// StudentProfile. Absence of a profile is ErrNoProfile, state untuk
// diarahkan ke onboarding dan bukan pelanggaran keamanan.
func (g *Guard) RequireStudentWithProfile(ctx context.Context, p *Principal) (*model.StudentProfile, error) {
	if err := RequireStudent(p); err != nil {
		return nil, err
	}

	profile, err := g.profiles.FindByUserID(ctx, p.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNoProfile
		}
		return nil, fmt.Errorf("lookup student profile: %w", err)
	}
	return profile, nil
}
