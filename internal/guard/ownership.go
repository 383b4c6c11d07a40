package guard

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"github.com/google/uuid"
)

type HostelStore interface {
	FindByID(ctx context.Context, id string) (*model.Hostel, error)
}

type StudentProfileStore interface {
	FindByID(ctx context.Context, id string) (*model.StudentProfile, error)
	FindByUserID(ctx context.Context, userID string) (*model.StudentProfile, error)
}

type TicketStore interface {
	FindByID(ctx context.Context, id string) (*model.Ticket, error)
}

type PaymentStore interface {
	FindByID(ctx context.Context, id string) (*model.Payment, error)
}

// Ownership menjawab "apakah principal X menguasai resource Y" lewat satu
// traversal relasi per predikat. Semua predikat fail closed: error lookup
// atau baris perantara yang hilang berarti false, bukan exception.
// Ketidakmampuan membuktikan kepemilikan tidak boleh dianggap bukti
// kepemilikan.
type Ownership struct {
	hostels  HostelStore
	profiles StudentProfileStore
	tickets  TicketStore
	payments PaymentStore
}

func NewOwnership(hostels HostelStore, profiles StudentProfileStore, tickets TicketStore, payments PaymentStore) *Ownership {
	return &Ownership{
		hostels:  hostels,
		profiles: profiles,
		tickets:  tickets,
		payments: payments,
	}
}

// OwnsHostel is true iff the hostel exists and its owner is userID.
func (o *Ownership) OwnsHostel(ctx context.Context, userID, hostelID uuid.UUID) bool {
	hostel, err := o.hostels.FindByID(ctx, hostelID.String())
	if err != nil {
		return false
	}
	return hostel.OwnerID == userID
}

// OwnsStudentProfile is true iff the profile exists and belongs to userID.
func (o *Ownership) OwnsStudentProfile(ctx context.Context, userID, profileID uuid.UUID) bool {
	profile, err := o.profiles.FindByID(ctx, profileID.String())
	if err != nil {
		return false
	}
	return profile.UserID == userID
}

// CanAccessTicket resolves ticket access per role: admin always, owner when
// the ticket's hostel is theirs, student when the ticket's profile is
// theirs, other roles never.
func (o *Ownership) CanAccessTicket(ctx context.Context, userID uuid.UUID, role model.Role, ticketID uuid.UUID) bool {
	if role == model.RoleAdmin {
		return true
	}

	ticket, err := o.tickets.FindByID(ctx, ticketID.String())
	if err != nil {
		return false
	}

	switch role {
	case model.RoleOwner:
		return o.OwnsHostel(ctx, userID, ticket.HostelID)
	case model.RoleStudent:
		return o.OwnsStudentProfile(ctx, userID, ticket.StudentProfileID)
	default:
		return false
	}
}

// CanAccessPayment resolves payment access for admin and owner. Students
// tidak lewat predikat ini: mereka membaca pembayaran miliknya sendiri lewat
// filter studentProfileID setelah RequireStudentWithProfile.
func (o *Ownership) CanAccessPayment(ctx context.Context, userID uuid.UUID, role model.Role, paymentID uuid.UUID) bool {
	if role == model.RoleAdmin {
		return true
	}
	if role != model.RoleOwner {
		return false
	}

	payment, err := o.payments.FindByID(ctx, paymentID.String())
	if err != nil {
		return false
	}
	return o.OwnsHostel(ctx, userID, payment.HostelID)
}
