package repository

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"gorm.io/gorm"
)

type HostelRepository interface {
	Create(ctx context.Context, hostel *model.Hostel) error
	FindByID(ctx context.Context, id string) (*model.Hostel, error)
	FindByInviteCode(ctx context.Context, code string) (*model.Hostel, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*model.Hostel, error)
	FindApproved(ctx context.Context) ([]*model.Hostel, error)
	FindAll(ctx context.Context) ([]*model.Hostel, error)
	Update(ctx context.Context, hostel *model.Hostel) error
	Delete(ctx context.Context, id string) error
}

type hostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) HostelRepository {
	return &hostelRepository{db: db}
}

func (r *hostelRepository) Create(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).Create(hostel).Error
}

func (r *hostelRepository) FindByID(ctx context.Context, id string) (*model.Hostel, error) {
	var hostel model.Hostel
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&hostel).Error; err != nil {
		return nil, err
	}

	return &hostel, nil
}

func (r *hostelRepository) FindByInviteCode(ctx context.Context, code string) (*model.Hostel, error) {
	var hostel model.Hostel
	if err := r.db.WithContext(ctx).
		Where("invite_code = ?", code).
		First(&hostel).Error; err != nil {
		return nil, err
	}

	return &hostel, nil
}

func (r *hostelRepository) FindByOwner(ctx context.Context, ownerID string) ([]*model.Hostel, error) {
	var hostels []*model.Hostel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&hostels).Error; err != nil {
		return nil, err
	}

	return hostels, nil
}

func (r *hostelRepository) FindApproved(ctx context.Context) ([]*model.Hostel, error) {
	var hostels []*model.Hostel
	if err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&hostels).Error; err != nil {
		return nil, err
	}

	return hostels, nil
}

func (r *hostelRepository) FindAll(ctx context.Context) ([]*model.Hostel, error) {
	var hostels []*model.Hostel
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Find(&hostels).Error; err != nil {
		return nil, err
	}

	return hostels, nil
}

func (r *hostelRepository) Update(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).Save(hostel).Error
}

func (r *hostelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Hostel{}, "id = ?", id).Error
}
