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

type StudentService interface {
	JoinHostel(ctx context.Context, userID uuid.UUID, input dto.JoinHostelInput) (*model.StudentProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.StudentProfile, error)
	LeaveHostel(ctx context.Context, profileID uuid.UUID) error
}

type studentService struct {
	profiles repository.StudentProfileRepository
	hostels  repository.HostelRepository
}

func NewStudentService(profiles repository.StudentProfileRepository, hostels repository.HostelRepository) StudentService {
	return &studentService{profiles: profiles, hostels: hostels}
}

// JoinHostel onboards a student into a hostel via invite code. Maksimal satu
// profile per user, dijaga dengan cek-lalu-insert: submit ganda yang balapan
// bisa lolos dua-duanya (celah yang disengaja, lihat DESIGN.md), submit
// ganda biasa ditolak sebagai duplikat.
func (s *studentService) JoinHostel(ctx context.Context, userID uuid.UUID, input dto.JoinHostelInput) (*model.StudentProfile, error) {
	code, err := validation.InviteCode(input.InviteCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
	}

	if _, err := s.profiles.FindByUserID(ctx, userID.String()); err == nil {
		return nil, fmt.Errorf("%w: kamu sudah terdaftar di sebuah kost", apperror.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hostel, err := s.hostels.FindByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kode undangan tidak dikenal", apperror.ErrInvalidInput)
		}
		return nil, err
	}

	if !hostel.IsApproved {
		return nil, fmt.Errorf("%w: kost belum disetujui admin", apperror.ErrInvalidInput)
	}

	profile := &model.StudentProfile{
		UserID:        userID,
		HostelID:      hostel.ID,
		RoomNumber:    input.RoomNumber,
		GuardianPhone: input.GuardianPhone,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	profile.Hostel = hostel
	return profile, nil
}

func (s *studentService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.StudentProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNoProfile
		}
		return nil, err
	}
	return profile, nil
}

func (s *studentService) LeaveHostel(ctx context.Context, profileID uuid.UUID) error {
	return s.profiles.Delete(ctx, profileID.String())
}
