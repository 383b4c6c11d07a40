package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"

	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/internal/repository"
	"anoa.com/kosthub/pkg/apperror"
	"anoa.com/kosthub/pkg/storage"
	"anoa.com/kosthub/pkg/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhotoFile merepresentasikan file foto kost yang diupload owner.
type PhotoFile struct {
	Reader   io.Reader
	FileName string
}

type HostelService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateHostelInput) (*model.Hostel, error)
	Update(ctx context.Context, hostelID uuid.UUID, input dto.UpdateHostelInput) (*model.Hostel, error)
	Delete(ctx context.Context, hostelID uuid.UUID) error
	GetByID(ctx context.Context, hostelID uuid.UUID) (*model.Hostel, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Hostel, error)
	ListApproved(ctx context.Context) ([]*model.Hostel, error)
	Search(ctx context.Context, query string) ([]*model.Hostel, error)
	UploadPhoto(ctx context.Context, hostelID uuid.UUID, photo *PhotoFile) (*model.Hostel, error)
	RegenerateInviteCode(ctx context.Context, hostelID uuid.UUID) (*model.Hostel, error)
}

type hostelService struct {
	repo         repository.HostelRepository
	photoStorage storage.PhotoStorage
	search       SearchService
}

func NewHostelService(repo repository.HostelRepository, photoStorage storage.PhotoStorage, search SearchService) HostelService {
	return &hostelService{
		repo:         repo,
		photoStorage: photoStorage,
		search:       search,
	}
}

const inviteCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newInviteCode() (string, error) {
	buf := make([]byte, validation.InviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	for i, b := range buf {
		buf[i] = inviteCodeCharset[int(b)%len(inviteCodeCharset)]
	}
	return string(buf), nil
}

// uniqueInviteCode mencoba beberapa kali kalau kebetulan tabrakan dengan
// kode kost lain.
func (s *hostelService) uniqueInviteCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := newInviteCode()
		if err != nil {
			return "", err
		}
		_, err = s.repo.FindByInviteCode(ctx, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate a unique invite code")
}

func (s *hostelService) Create(ctx context.Context, ownerID uuid.UUID, input dto.CreateHostelInput) (*model.Hostel, error) {
	code, err := s.uniqueInviteCode(ctx)
	if err != nil {
		return nil, err
	}

	hostel := &model.Hostel{
		OwnerID:       ownerID,
		Name:          input.Name,
		Address:       input.Address,
		City:          input.City,
		PricePerMonth: input.PricePerMonth,
		TotalRooms:    input.TotalRooms,
		InviteCode:    code,
		IsApproved:    false,
	}

	if input.Description != nil {
		desc, err := validation.Text(*input.Description, 2000)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
		}
		hostel.Description = &desc
	}

	if err := s.repo.Create(ctx, hostel); err != nil {
		return nil, err
	}
	return hostel, nil
}

func (s *hostelService) Update(ctx context.Context, hostelID uuid.UUID, input dto.UpdateHostelInput) (*model.Hostel, error) {
	hostel, err := s.repo.FindByID(ctx, hostelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		hostel.Name = *input.Name
	}
	if input.Address != nil {
		hostel.Address = *input.Address
	}
	if input.City != nil {
		hostel.City = *input.City
	}
	if input.Description != nil {
		desc, err := validation.Text(*input.Description, 2000)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
		}
		hostel.Description = &desc
	}
	if input.PricePerMonth != nil {
		hostel.PricePerMonth = *input.PricePerMonth
	}
	if input.TotalRooms != nil {
		hostel.TotalRooms = *input.TotalRooms
	}

	if err := s.repo.Update(ctx, hostel); err != nil {
		return nil, err
	}
	s.reindex(hostel)
	return hostel, nil
}

func (s *hostelService) Delete(ctx context.Context, hostelID uuid.UUID) error {
	hostel, err := s.repo.FindByID(ctx, hostelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, hostelID.String()); err != nil {
		return err
	}

	if s.search != nil {
		if err := s.search.DeleteHostel(hostelID.String()); err != nil {
			log.Printf("Failed to remove hostel %s from search index: %v", hostelID, err)
		}
	}
	if s.photoStorage != nil && hostel.PhotoURL != nil {
		if err := s.photoStorage.DeletePhoto(ctx, *hostel.PhotoURL); err != nil {
			log.Printf("Failed to delete photo for hostel %s: %v", hostelID, err)
		}
	}
	return nil
}

func (s *hostelService) GetByID(ctx context.Context, hostelID uuid.UUID) (*model.Hostel, error) {
	hostel, err := s.repo.FindByID(ctx, hostelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return hostel, nil
}

func (s *hostelService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Hostel, error) {
	return s.repo.FindByOwner(ctx, ownerID.String())
}

func (s *hostelService) ListApproved(ctx context.Context) ([]*model.Hostel, error) {
	return s.repo.FindApproved(ctx)
}

// Search menjalankan full-text search di indeks, lalu memuat barisnya dari
// database. Tanpa meilisearch, jatuh ke daftar approved biasa.
func (s *hostelService) Search(ctx context.Context, query string) ([]*model.Hostel, error) {
	if s.search == nil || query == "" {
		return s.repo.FindApproved(ctx)
	}

	ids, err := s.search.SearchHostels(query)
	if err != nil {
		log.Printf("Hostel search failed, falling back to listing: %v", err)
		return s.repo.FindApproved(ctx)
	}

	hostels := make([]*model.Hostel, 0, len(ids))
	for _, id := range ids {
		hostel, err := s.repo.FindByID(ctx, id)
		if err != nil {
			continue
		}
		if hostel.IsApproved {
			hostels = append(hostels, hostel)
		}
	}
	return hostels, nil
}

func (s *hostelService) UploadPhoto(ctx context.Context, hostelID uuid.UUID, photo *PhotoFile) (*model.Hostel, error) {
	if photo == nil || photo.Reader == nil {
		return nil, fmt.Errorf("%w: foto wajib diisi", apperror.ErrInvalidInput)
	}
	if s.photoStorage == nil {
		return nil, fmt.Errorf("photo storage is not configured")
	}

	hostel, err := s.repo.FindByID(ctx, hostelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	url, err := s.photoStorage.UploadPhoto(ctx, photo.Reader, "hostels", photo.FileName)
	if err != nil {
		return nil, err
	}

	if hostel.PhotoURL != nil {
		if err := s.photoStorage.DeletePhoto(ctx, *hostel.PhotoURL); err != nil {
			log.Printf("Failed to delete old photo for hostel %s: %v", hostelID, err)
		}
	}

	hostel.PhotoURL = &url
	if err := s.repo.Update(ctx, hostel); err != nil {
		return nil, err
	}
	return hostel, nil
}

func (s *hostelService) RegenerateInviteCode(ctx context.Context, hostelID uuid.UUID) (*model.Hostel, error) {
	hostel, err := s.repo.FindByID(ctx, hostelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	code, err := s.uniqueInviteCode(ctx)
	if err != nil {
		return nil, err
	}

	hostel.InviteCode = code
	if err := s.repo.Update(ctx, hostel); err != nil {
		return nil, err
	}
	return hostel, nil
}

func (s *hostelService) reindex(hostel *model.Hostel) {
	if s.search == nil {
		return
	}
	if err := s.search.IndexHostel(hostel); err != nil {
		log.Printf("Failed to index hostel %s: %v", hostel.ID, err)
	}
}
