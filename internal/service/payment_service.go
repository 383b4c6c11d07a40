package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/internal/repository"
	"anoa.com/kosthub/pkg/apperror"
	"anoa.com/kosthub/pkg/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService interface {
	GenerateDues(ctx context.Context, hostelID uuid.UUID, input dto.GenerateDuesInput) ([]*model.Payment, error)
	MarkPaid(ctx context.Context, paymentID uuid.UUID) (*model.Payment, error)
	GetByID(ctx context.Context, paymentID uuid.UUID) (*model.Payment, error)
	ListForProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Payment, error)
	ListForHostel(ctx context.Context, hostelID uuid.UUID, month string) ([]*model.Payment, error)
}

type paymentService struct {
	payments repository.PaymentRepository
	profiles repository.StudentProfileRepository
}

func NewPaymentService(payments repository.PaymentRepository, profiles repository.StudentProfileRepository) PaymentService {
	return &paymentService{payments: payments, profiles: profiles}
}

// GenerateDues membuat tagihan `due` untuk semua penghuni kost pada satu
// bulan. Satu record per (profile, bulan) dijaga dengan cek-lalu-insert;
// profile yang sudah punya tagihan bulan itu dilewati, jadi operasi ini aman
// diulang.
func (s *paymentService) GenerateDues(ctx context.Context, hostelID uuid.UUID, input dto.GenerateDuesInput) ([]*model.Payment, error) {
	month, err := validation.Month(input.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
	}

	profiles, err := s.profiles.FindByHostel(ctx, hostelID.String())
	if err != nil {
		return nil, err
	}

	var created []*model.Payment
	for _, profile := range profiles {
		_, err := s.payments.FindByProfileAndMonth(ctx, profile.ID.String(), month)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		payment := &model.Payment{
			StudentProfileID: profile.ID,
			HostelID:         hostelID,
			Month:            month,
			Amount:           input.Amount,
			Status:           model.PaymentDue,
		}
		if err := s.payments.Create(ctx, payment); err != nil {
			return nil, err
		}
		created = append(created, payment)
	}
	return created, nil
}

func (s *paymentService) MarkPaid(ctx context.Context, paymentID uuid.UUID) (*model.Payment, error) {
	payment, err := s.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == model.PaymentPaid {
		return payment, nil
	}

	now := time.Now()
	payment.Status = model.PaymentPaid
	payment.PaidAt = &now
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*model.Payment, error) {
	payment, err := s.payments.FindByID(ctx, paymentID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListForProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Payment, error) {
	return s.payments.FindByProfile(ctx, profileID.String())
}

func (s *paymentService) ListForHostel(ctx context.Context, hostelID uuid.UUID, month string) ([]*model.Payment, error) {
	if month == "" {
		return s.payments.FindByHostel(ctx, hostelID.String())
	}

	month, err := validation.Month(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
	}
	return s.payments.FindByHostelAndMonth(ctx, hostelID.String(), month)
}
