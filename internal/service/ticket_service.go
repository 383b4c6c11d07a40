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

type TicketService interface {
	Create(ctx context.Context, profile *model.StudentProfile, input dto.CreateTicketInput) (*model.Ticket, error)
	GetByID(ctx context.Context, ticketID uuid.UUID) (*model.Ticket, error)
	ListForProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Ticket, error)
	ListForHostel(ctx context.Context, hostelID uuid.UUID) ([]*model.Ticket, error)
	ListAll(ctx context.Context) ([]*model.Ticket, error)
	Reply(ctx context.Context, ticketID uuid.UUID, input dto.OwnerReplyInput) (*model.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID uuid.UUID, input dto.UpdateTicketStatusInput) (*model.Ticket, error)
	AddAdminNotes(ctx context.Context, ticketID uuid.UUID, input dto.AdminNotesInput) (*model.Ticket, error)
}

type ticketService struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) TicketService {
	return &ticketService{repo: repo}
}

// Create membuat ticket atas nama profile. HostelID disalin dari profile
// saat pembuatan (denormalisasi untuk query per kost).
func (s *ticketService) Create(ctx context.Context, profile *model.StudentProfile, input dto.CreateTicketInput) (*model.Ticket, error) {
	subject, err := validation.Text(input.Subject, 150)
	if err != nil || subject == "" {
		return nil, fmt.Errorf("%w: subjek tidak valid", apperror.ErrInvalidInput)
	}
	body, err := validation.Text(input.Body, 4000)
	if err != nil || body == "" {
		return nil, fmt.Errorf("%w: isi tidak valid", apperror.ErrInvalidInput)
	}

	ticket := &model.Ticket{
		StudentProfileID: profile.ID,
		HostelID:         profile.HostelID,
		Subject:          subject,
		Body:             body,
		Status:           model.TicketOpen,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) GetByID(ctx context.Context, ticketID uuid.UUID) (*model.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, ticketID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) ListForProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Ticket, error) {
	return s.repo.FindByProfile(ctx, profileID.String())
}

func (s *ticketService) ListForHostel(ctx context.Context, hostelID uuid.UUID) ([]*model.Ticket, error) {
	return s.repo.FindByHostel(ctx, hostelID.String())
}

func (s *ticketService) ListAll(ctx context.Context) ([]*model.Ticket, error) {
	return s.repo.FindAll(ctx)
}

func (s *ticketService) Reply(ctx context.Context, ticketID uuid.UUID, input dto.OwnerReplyInput) (*model.Ticket, error) {
	ticket, err := s.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	reply, err := validation.Text(input.Reply, 4000)
	if err != nil || reply == "" {
		return nil, fmt.Errorf("%w: balasan tidak valid", apperror.ErrInvalidInput)
	}
	ticket.OwnerReply = &reply

	if input.Status != "" {
		status, err := model.ParseTicketStatus(input.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
		}
		ticket.Status = status
	} else if ticket.Status == model.TicketOpen {
		ticket.Status = model.TicketInProgress
	}

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) UpdateStatus(ctx context.Context, ticketID uuid.UUID, input dto.UpdateTicketStatusInput) (*model.Ticket, error) {
	ticket, err := s.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	status, err := model.ParseTicketStatus(input.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err)
	}

	ticket.Status = status
	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) AddAdminNotes(ctx context.Context, ticketID uuid.UUID, input dto.AdminNotesInput) (*model.Ticket, error) {
	ticket, err := s.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	notes, err := validation.Text(input.Notes, 4000)
	if err != nil || notes == "" {
		return nil, fmt.Errorf("%w: catatan tidak valid", apperror.ErrInvalidInput)
	}

	ticket.AdminNotes = &notes
	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
