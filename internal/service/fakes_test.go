package service

import (
	"context"

	"anoa.com/kosthub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeProfileRepo struct {
	rows map[string]*model.StudentProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{rows: make(map[string]*model.StudentProfile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *model.StudentProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.rows[profile.ID.String()] = profile
	return nil
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	if p, ok := f.rows[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (*model.StudentProfile, error) {
	for _, p := range f.rows {
		if p.UserID.String() == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) FindByHostel(ctx context.Context, hostelID string) ([]*model.StudentProfile, error) {
	var out []*model.StudentProfile
	for _, p := range f.rows {
		if p.HostelID.String() == hostelID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *model.StudentProfile) error {
	f.rows[profile.ID.String()] = profile
	return nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

type fakeHostelRepo struct {
	rows map[string]*model.Hostel
}

func newFakeHostelRepo() *fakeHostelRepo {
	return &fakeHostelRepo{rows: make(map[string]*model.Hostel)}
}

func (f *fakeHostelRepo) Create(ctx context.Context, hostel *model.Hostel) error {
	if hostel.ID == uuid.Nil {
		hostel.ID = uuid.New()
	}
	f.rows[hostel.ID.String()] = hostel
	return nil
}

func (f *fakeHostelRepo) FindByID(ctx context.Context, id string) (*model.Hostel, error) {
	if h, ok := f.rows[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHostelRepo) FindByInviteCode(ctx context.Context, code string) (*model.Hostel, error) {
	for _, h := range f.rows {
		if h.InviteCode == code {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHostelRepo) FindByOwner(ctx context.Context, ownerID string) ([]*model.Hostel, error) {
	var out []*model.Hostel
	for _, h := range f.rows {
		if h.OwnerID.String() == ownerID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHostelRepo) FindApproved(ctx context.Context) ([]*model.Hostel, error) {
	var out []*model.Hostel
	for _, h := range f.rows {
		if h.IsApproved {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHostelRepo) FindAll(ctx context.Context) ([]*model.Hostel, error) {
	var out []*model.Hostel
	for _, h := range f.rows {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHostelRepo) Update(ctx context.Context, hostel *model.Hostel) error {
	f.rows[hostel.ID.String()] = hostel
	return nil
}

func (f *fakeHostelRepo) Delete(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

type fakePaymentRepo struct {
	rows map[string]*model.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{rows: make(map[string]*model.Payment)}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.rows[payment.ID.String()] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	if p, ok := f.rows[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) FindByProfile(ctx context.Context, profileID string) ([]*model.Payment, error) {
	var out []*model.Payment
	for _, p := range f.rows {
		if p.StudentProfileID.String() == profileID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindByProfileAndMonth(ctx context.Context, profileID, month string) (*model.Payment, error) {
	for _, p := range f.rows {
		if p.StudentProfileID.String() == profileID && p.Month == month {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) FindByHostel(ctx context.Context, hostelID string) ([]*model.Payment, error) {
	var out []*model.Payment
	for _, p := range f.rows {
		if p.HostelID.String() == hostelID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindByHostelAndMonth(ctx context.Context, hostelID, month string) ([]*model.Payment, error) {
	var out []*model.Payment
	for _, p := range f.rows {
		if p.HostelID.String() == hostelID && p.Month == month {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *model.Payment) error {
	f.rows[payment.ID.String()] = payment
	return nil
}

type fakeAnnouncementRepo struct {
	rows map[string]*model.Announcement
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{rows: make(map[string]*model.Announcement)}
}

func (f *fakeAnnouncementRepo) Create(ctx context.Context, announcement *model.Announcement) error {
	if announcement.ID == uuid.Nil {
		announcement.ID = uuid.New()
	}
	f.rows[announcement.ID.String()] = announcement
	return nil
}

func (f *fakeAnnouncementRepo) FindByHostel(ctx context.Context, hostelID string) ([]*model.Announcement, error) {
	var out []*model.Announcement
	for _, a := range f.rows {
		if a.HostelID.String() == hostelID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnnouncementRepo) FindByID(ctx context.Context, id string) (*model.Announcement, error) {
	if a, ok := f.rows[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAnnouncementRepo) Delete(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}
