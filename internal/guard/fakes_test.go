package guard

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"gorm.io/gorm"
)

type fakeUsers struct {
	rows map[string]*model.User
	err  error
}

func (f *fakeUsers) FindByID(ctx context.Context, id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.rows[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeHostels struct {
	rows  map[string]*model.Hostel
	err   error
	calls int
}

func (f *fakeHostels) FindByID(ctx context.Context, id string) (*model.Hostel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if h, ok := f.rows[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProfiles struct {
	byID   map[string]*model.StudentProfile
	byUser map[string]*model.StudentProfile
	err    error
}

func (f *fakeProfiles) FindByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfiles) FindByUserID(ctx context.Context, userID string) (*model.StudentProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byUser[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTickets struct {
	rows map[string]*model.Ticket
	err  error
}

func (f *fakeTickets) FindByID(ctx context.Context, id string) (*model.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.rows[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakePayments struct {
	rows map[string]*model.Payment
	err  error
}

func (f *fakePayments) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.rows[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}
