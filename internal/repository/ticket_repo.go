package repository

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	FindByID(ctx context.Context, id string) (*model.Ticket, error)
	FindByProfile(ctx context.Context, profileID string) ([]*model.Ticket, error)
	FindByHostel(ctx context.Context, hostelID string) ([]*model.Ticket, error)
	FindAll(ctx context.Context) ([]*model.Ticket, error)
	Update(ctx context.Context, ticket *model.Ticket) error
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) FindByID(ctx context.Context, id string) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := r.db.WithContext(ctx).
		Preload("StudentProfile").
		Preload("StudentProfile.User").
		Where("id = ?", id).
		First(&ticket).Error; err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *ticketRepository) FindByProfile(ctx context.Context, profileID string) ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	if err := r.db.WithContext(ctx).
		Where("student_profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *ticketRepository) FindByHostel(ctx context.Context, hostelID string) ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	if err := r.db.WithContext(ctx).
		Preload("StudentProfile").
		Preload("StudentProfile.User").
		Where("hostel_id = ?", hostelID).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *ticketRepository) FindAll(ctx context.Context) ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	if err := r.db.WithContext(ctx).
		Preload("Hostel").
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}
