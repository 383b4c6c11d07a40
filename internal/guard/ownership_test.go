package guard

import (
	"context"
	"errors"
	"testing"

	"anoa.com/kosthub/internal/model"
	"github.com/google/uuid"
)

type ownershipFixture struct {
	ownerID   uuid.UUID
	studentID uuid.UUID
	hostelID  uuid.UUID
	profileID uuid.UUID
	ticketID  uuid.UUID
	paymentID uuid.UUID

	hostels  *fakeHostels
	profiles *fakeProfiles
	tickets  *fakeTickets
	payments *fakePayments

	o *Ownership
}

func newOwnershipFixture() *ownershipFixture {
	f := &ownershipFixture{
		ownerID:   uuid.New(),
		studentID: uuid.New(),
		hostelID:  uuid.New(),
		profileID: uuid.New(),
		ticketID:  uuid.New(),
		paymentID: uuid.New(),
	}
	f.hostels = &fakeHostels{rows: map[string]*model.Hostel{
		f.hostelID.String(): {ID: f.hostelID, OwnerID: f.ownerID},
	}}
	f.profiles = &fakeProfiles{byID: map[string]*model.StudentProfile{
		f.profileID.String(): {ID: f.profileID, UserID: f.studentID, HostelID: f.hostelID},
	}}
	f.tickets = &fakeTickets{rows: map[string]*model.Ticket{
		f.ticketID.String(): {ID: f.ticketID, StudentProfileID: f.profileID, HostelID: f.hostelID},
	}}
	f.payments = &fakePayments{rows: map[string]*model.Payment{
		f.paymentID.String(): {ID: f.paymentID, StudentProfileID: f.profileID, HostelID: f.hostelID, Month: "2026-03"},
	}}
	f.o = NewOwnership(f.hostels, f.profiles, f.tickets, f.payments)
	return f
}

func TestOwnsHostel(t *testing.T) {
	ctx := context.Background()
	f := newOwnershipFixture()

	if !f.o.OwnsHostel(ctx, f.ownerID, f.hostelID) {
		t.Fatalf("owner must own the hostel")
	}
	if f.o.OwnsHostel(ctx, f.studentID, f.hostelID) {
		t.Fatalf("non-owner must not own the hostel")
	}
	if f.o.OwnsHostel(ctx, f.ownerID, uuid.New()) {
		t.Fatalf("missing hostel must resolve to false")
	}

	// idempotence: no intervening mutation, same answer
	first := f.o.OwnsHostel(ctx, f.ownerID, f.hostelID)
	second := f.o.OwnsHostel(ctx, f.ownerID, f.hostelID)
	if first != second {
		t.Fatalf("predicate must be idempotent: %v then %v", first, second)
	}
}

func TestOwnsHostelFailsClosed(t *testing.T) {
	ctx := context.Background()
	f := newOwnershipFixture()
	f.hostels.err = errors.New("connection refused")

	if f.o.OwnsHostel(ctx, f.ownerID, f.hostelID) {
		t.Fatalf("lookup error must yield false, never true")
	}
}

func TestOwnsStudentProfile(t *testing.T) {
	ctx := context.Background()
	f := newOwnershipFixture()

	if !f.o.OwnsStudentProfile(ctx, f.studentID, f.profileID) {
		t.Fatalf("student must own their profile")
	}
	if f.o.OwnsStudentProfile(ctx, f.ownerID, f.profileID) {
		t.Fatalf("other user must not own the profile")
	}
	if f.o.OwnsStudentProfile(ctx, f.studentID, uuid.New()) {
		t.Fatalf("missing profile must resolve to false")
	}
}

func TestCanAccessTicket(t *testing.T) {
	ctx := context.Background()
	f := newOwnershipFixture()

	if !f.o.CanAccessTicket(ctx, uuid.New(), model.RoleAdmin, f.ticketID) {
		t.Fatalf("admin must access any ticket")
	}
	if !f.o.CanAccessTicket(ctx, f.ownerID, model.RoleOwner, f.ticketID) {
		t.Fatalf("hostel owner must access the ticket")
	}
	if !f.o.CanAccessTicket(ctx, f.studentID, model.RoleStudent, f.ticketID) {
		t.Fatalf("ticket author must access the ticket")
	}
	if f.o.CanAccessTicket(ctx, uuid.New(), model.RoleOwner, f.ticketID) {
		t.Fatalf("other owner must not access the ticket")
	}
	if f.o.CanAccessTicket(ctx, uuid.New(), model.RoleStudent, f.ticketID) {
		t.Fatalf("other student must not access the ticket")
	}
	if f.o.CanAccessTicket(ctx, f.studentID, model.Role("ghost"), f.ticketID) {
		t.Fatalf("unknown role must never access a ticket")
	}
	if f.o.CanAccessTicket(ctx, f.ownerID, model.RoleOwner, uuid.New()) {
		t.Fatalf("missing ticket must resolve to false")
	}

	// baris perantara hilang: ticket ada tapi hostel-nya sudah terhapus
	delete(f.hostels.rows, f.hostelID.String())
	if f.o.CanAccessTicket(ctx, f.ownerID, model.RoleOwner, f.ticketID) {
		t.Fatalf("missing intermediate hostel row must resolve to false")
	}
}

func TestCanAccessPayment(t *testing.T) {
	ctx := context.Background()
	f := newOwnershipFixture()

	if !f.o.CanAccessPayment(ctx, uuid.New(), model.RoleAdmin, f.paymentID) {
		t.Fatalf("admin must access any payment")
	}
	if !f.o.CanAccessPayment(ctx, f.ownerID, model.RoleOwner, f.paymentID) {
		t.Fatalf("hostel owner must access the payment")
	}
	if f.o.CanAccessPayment(ctx, uuid.New(), model.RoleOwner, f.paymentID) {
		t.Fatalf("other owner must not access the payment")
	}
	// students read their own payments through profile-scoped filters, not
	// through this predicate
	if f.o.CanAccessPayment(ctx, f.studentID, model.RoleStudent, f.paymentID) {
		t.Fatalf("student has no direct payment-access path here")
	}

	f.payments.err = errors.New("timeout")
	if f.o.CanAccessPayment(ctx, f.ownerID, model.RoleOwner, f.paymentID) {
		t.Fatalf("lookup error must yield false")
	}
}
