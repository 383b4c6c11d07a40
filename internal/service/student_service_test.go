package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/pkg/apperror"
	"github.com/google/uuid"
)

func seedHostel(repo *fakeHostelRepo, code string, approved bool) *model.Hostel {
	hostel := &model.Hostel{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Name:       "Kost Melati",
		Address:    "Jl. Kenanga 12",
		City:       "Bandung",
		InviteCode: code,
		IsApproved: approved,
	}
	repo.rows[hostel.ID.String()] = hostel
	return hostel
}

func TestJoinHostel(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	hostels := newFakeHostelRepo()
	hostel := seedHostel(hostels, "AB12CD", true)
	svc := NewStudentService(profiles, hostels)

	userID := uuid.New()
	// kode huruf kecil harus dinormalisasi ke atas sebelum lookup
	profile, err := svc.JoinHostel(ctx, userID, dto.JoinHostelInput{InviteCode: "ab12cd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.HostelID != hostel.ID || profile.UserID != userID {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	// satu profile per user: join kedua kali ditolak sebagai duplikat
	_, err = svc.JoinHostel(ctx, userID, dto.JoinHostelInput{InviteCode: "AB12CD"})
	if !errors.Is(err, apperror.ErrDuplicate) {
		t.Fatalf("second join: got %v, want ErrDuplicate", err)
	}
}

func TestJoinHostelRejectsBadCodes(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	hostels := newFakeHostelRepo()
	seedHostel(hostels, "AB12CD", true)
	svc := NewStudentService(profiles, hostels)

	// format salah
	_, err := svc.JoinHostel(ctx, uuid.New(), dto.JoinHostelInput{InviteCode: "AB12"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("short code: got %v, want ErrInvalidInput", err)
	}

	// format benar tapi tidak dikenal
	_, err = svc.JoinHostel(ctx, uuid.New(), dto.JoinHostelInput{InviteCode: "ZZZZZZ"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("unknown code: got %v, want ErrInvalidInput", err)
	}
}

func TestJoinHostelRequiresApproval(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	hostels := newFakeHostelRepo()
	seedHostel(hostels, "AB12CD", false)
	svc := NewStudentService(profiles, hostels)

	_, err := svc.JoinHostel(ctx, uuid.New(), dto.JoinHostelInput{InviteCode: "AB12CD"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("unapproved hostel: got %v, want ErrInvalidInput", err)
	}
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	hostels := newFakeHostelRepo()
	svc := NewStudentService(profiles, hostels)

	_, err := svc.GetProfile(ctx, uuid.New())
	if !errors.Is(err, apperror.ErrNoProfile) {
		t.Fatalf("missing profile: got %v, want ErrNoProfile", err)
	}
}
