package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/internal/repository"
	"anoa.com/kosthub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	SetBlocked(ctx context.Context, userID uuid.UUID, input dto.SetBlockedInput) (*model.User, error)
	SetRole(ctx context.Context, userID uuid.UUID, input dto.SetRoleInput) (*model.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ApproveHostel(ctx context.Context, hostelID uuid.UUID) (*model.Hostel, error)
	ListHostels(ctx context.Context) ([]*model.Hostel, error)
}

type adminService struct {
	users   repository.UserRepository
	hostels repository.HostelRepository
	search  SearchService
}

func NewAdminService(users repository.UserRepository, hostels repository.HostelRepository, search SearchService) AdminService {
	return &adminService{users: users, hostels: hostels, search: search}
}

func (s *adminService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

func (s *adminService) SetBlocked(ctx context.Context, userID uuid.UUID, input dto.SetBlockedInput) (*model.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsBlocked = *input.IsBlocked
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) SetRole(ctx context.Context, userID uuid.UUID, input dto.SetRoleInput) (*model.User, error) {
	role, err := model.ParseRole(input.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID.String())
}

// ApproveHostel membuka listing ke publik dan memasukkannya ke indeks
// pencarian.
func (s *adminService) ApproveHostel(ctx context.Context, hostelID uuid.UUID) (*model.Hostel, error) {
	hostel, err := s.hostels.FindByID(ctx, hostelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	hostel.IsApproved = true
	if err := s.hostels.Update(ctx, hostel); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexHostel(hostel); err != nil {
			log.Printf("Failed to index approved hostel %s: %v", hostelID, err)
		}
	}
	return hostel, nil
}

func (s *adminService) ListHostels(ctx context.Context) ([]*model.Hostel, error) {
	return s.hostels.FindAll(ctx)
}

func (s *adminService) findUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
