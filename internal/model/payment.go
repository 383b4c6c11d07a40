package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentDue  PaymentStatus = "due"
	PaymentPaid PaymentStatus = "paid"
)

// Payment adalah tagihan sewa bulanan. Satu record per (profile, bulan);
// dijaga lewat cek-lalu-insert, sama seperti StudentProfile.
type Payment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	StudentProfileID uuid.UUID       `gorm:"type:uuid;index;not null" json:"student_profile_id"`
	StudentProfile   *StudentProfile `gorm:"foreignKey:StudentProfileID" json:"student_profile,omitempty"`
	HostelID         uuid.UUID       `gorm:"type:uuid;index;not null" json:"hostel_id"`
	Month            string          `gorm:"size:7;not null" json:"month"`
	Amount           int64           `gorm:"not null" json:"amount"`
	Status           PaymentStatus   `gorm:"size:10;not null;default:due" json:"status"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
