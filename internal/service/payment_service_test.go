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

func seedProfiles(repo *fakeProfileRepo, hostelID uuid.UUID, n int) []*model.StudentProfile {
	out := make([]*model.StudentProfile, 0, n)
	for i := 0; i < n; i++ {
		p := &model.StudentProfile{ID: uuid.New(), UserID: uuid.New(), HostelID: hostelID}
		repo.rows[p.ID.String()] = p
		out = append(out, p)
	}
	return out
}

func TestGenerateDues(t *testing.T) {
	ctx := context.Background()
	payments := newFakePaymentRepo()
	profiles := newFakeProfileRepo()
	hostelID := uuid.New()
	seedProfiles(profiles, hostelID, 3)
	svc := NewPaymentService(payments, profiles)

	created, err := svc.GenerateDues(ctx, hostelID, dto.GenerateDuesInput{Month: "2026-03", Amount: 750000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 dues, got %d", len(created))
	}
	for _, p := range created {
		if p.Status != model.PaymentDue || p.Month != "2026-03" || p.Amount != 750000 {
			t.Fatalf("unexpected payment: %+v", p)
		}
	}

	// generate ulang bulan yang sama: profile yang sudah punya tagihan
	// dilewati, tidak jadi duplikat
	again, err := svc.GenerateDues(ctx, hostelID, dto.GenerateDuesInput{Month: "2026-03", Amount: 750000})
	if err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("rerun must create nothing, got %d", len(again))
	}
	if len(payments.rows) != 3 {
		t.Fatalf("expected 3 payment rows total, got %d", len(payments.rows))
	}
}

func TestGenerateDuesRejectsBadMonth(t *testing.T) {
	ctx := context.Background()
	svc := NewPaymentService(newFakePaymentRepo(), newFakeProfileRepo())

	_, err := svc.GenerateDues(ctx, uuid.New(), dto.GenerateDuesInput{Month: "2024-13", Amount: 500000})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("month 2024-13: got %v, want ErrInvalidInput", err)
	}
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	payments := newFakePaymentRepo()
	payment := &model.Payment{
		ID:               uuid.New(),
		StudentProfileID: uuid.New(),
		HostelID:         uuid.New(),
		Month:            "2026-03",
		Amount:           750000,
		Status:           model.PaymentDue,
	}
	payments.rows[payment.ID.String()] = payment
	svc := NewPaymentService(payments, newFakeProfileRepo())

	got, err := svc.MarkPaid(ctx, payment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.PaymentPaid || got.PaidAt == nil {
		t.Fatalf("expected paid with timestamp, got %+v", got)
	}

	firstPaidAt := *got.PaidAt
	got, err = svc.MarkPaid(ctx, payment.ID)
	if err != nil {
		t.Fatalf("unexpected error on second mark: %v", err)
	}
	if !got.PaidAt.Equal(firstPaidAt) {
		t.Fatalf("marking paid twice must not move the timestamp")
	}

	if _, err := svc.MarkPaid(ctx, uuid.New()); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("missing payment: got %v, want ErrNotFound", err)
	}
}
