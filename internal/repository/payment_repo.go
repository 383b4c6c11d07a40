package repository

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByID(ctx context.Context, id string) (*model.Payment, error)
	FindByProfile(ctx context.Context, profileID string) ([]*model.Payment, error)
	FindByProfileAndMonth(ctx context.Context, profileID, month string) (*model.Payment, error)
	FindByHostel(ctx context.Context, hostelID string) ([]*model.Payment, error)
	FindByHostelAndMonth(ctx context.Context, hostelID, month string) ([]*model.Payment, error)
	Update(ctx context.Context, payment *model.Payment) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepository) FindByProfile(ctx context.Context, profileID string) ([]*model.Payment, error) {
	var payments []*model.Payment
	if err := r.db.WithContext(ctx).
		Where("student_profile_id = ?", profileID).
		Order("month DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) FindByProfileAndMonth(ctx context.Context, profileID, month string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).
		Where("student_profile_id = ? AND month = ?", profileID, month).
		First(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepository) FindByHostel(ctx context.Context, hostelID string) ([]*model.Payment, error) {
	var payments []*model.Payment
	if err := r.db.WithContext(ctx).
		Preload("StudentProfile").
		Preload("StudentProfile.User").
		Where("hostel_id = ?", hostelID).
		Order("month DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) FindByHostelAndMonth(ctx context.Context, hostelID, month string) ([]*model.Payment, error) {
	var payments []*model.Payment
	if err := r.db.WithContext(ctx).
		Preload("StudentProfile").
		Preload("StudentProfile.User").
		Where("hostel_id = ? AND month = ?", hostelID, month).
		Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}
