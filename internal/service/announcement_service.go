package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/internal/repository"
	"anoa.com/kosthub/pkg/apperror"
	"anoa.com/kosthub/pkg/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementService interface {
	Create(ctx context.Context, hostelID, authorID uuid.UUID, input dto.CreateAnnouncementInput) (*model.Announcement, error)
	ListForHostel(ctx context.Context, hostelID uuid.UUID) ([]*model.Announcement, error)
	Delete(ctx context.Context, hostelID, announcementID uuid.UUID) error
}

type announcementService struct {
	repo repository.AnnouncementRepository
}

func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) Create(ctx context.Context, hostelID, authorID uuid.UUID, input dto.CreateAnnouncementInput) (*model.Announcement, error) {
	title, err := validation.Text(input.Title, 150)
	if err != nil || title == "" {
		return nil, fmt.Errorf("%w: judul tidak valid", apperror.ErrInvalidInput)
	}
	body, err := validation.Text(input.Body, 4000)
	if err != nil || body == "" {
		return nil, fmt.Errorf("%w: isi tidak valid", apperror.ErrInvalidInput)
	}

	announcement := &model.Announcement{
		HostelID: hostelID,
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *announcementService) ListForHostel(ctx context.Context, hostelID uuid.UUID) ([]*model.Announcement, error) {
	return s.repo.FindByHostel(ctx, hostelID.String())
}

// Delete hanya menghapus pengumuman milik hostel yang sudah dicek
// kepemilikannya oleh caller; id pengumuman dari hostel lain ditolak.
func (s *announcementService) Delete(ctx context.Context, hostelID, announcementID uuid.UUID) error {
	announcement, err := s.repo.FindByID(ctx, announcementID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	if announcement.HostelID != hostelID {
		return apperror.ErrNotOwner
	}
	return s.repo.Delete(ctx, announcementID.String())
}
