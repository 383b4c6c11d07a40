package repository

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	FindByHostel(ctx context.Context, hostelID string) ([]*model.Announcement, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) FindByHostel(ctx context.Context, hostelID string) ([]*model.Announcement, error) {
	var announcements []*model.Announcement
	if err := r.db.WithContext(ctx).
		Where("hostel_id = ?", hostelID).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}

	return announcements, nil
}

func (r *announcementRepository) FindByID(ctx context.Context, id string) (*model.Announcement, error) {
	var announcement model.Announcement
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&announcement).Error; err != nil {
		return nil, err
	}

	return &announcement, nil
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Announcement{}, "id = ?", id).Error
}
