package repository

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"gorm.io/gorm"
)

type StudentProfileRepository interface {
	Create(ctx context.Context, profile *model.StudentProfile) error
	FindByID(ctx context.Context, id string) (*model.StudentProfile, error)
	FindByUserID(ctx context.Context, userID string) (*model.StudentProfile, error)
	FindByHostel(ctx context.Context, hostelID string) ([]*model.StudentProfile, error)
	Update(ctx context.Context, profile *model.StudentProfile) error
	Delete(ctx context.Context, id string) error
}

type studentProfileRepository struct {
	db *gorm.DB
}

func NewStudentProfileRepository(db *gorm.DB) StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

func (r *studentProfileRepository) Create(ctx context.Context, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *studentProfileRepository) FindByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Hostel").
		Where("id = ?", id).
		First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *studentProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	if err := r.db.WithContext(ctx).
		Preload("Hostel").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *studentProfileRepository) FindByHostel(ctx context.Context, hostelID string) ([]*model.StudentProfile, error) {
	var profiles []*model.StudentProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("hostel_id = ?", hostelID).
		Order("joined_at ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *studentProfileRepository) Update(ctx context.Context, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *studentProfileRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.StudentProfile{}, "id = ?", id).Error
}
