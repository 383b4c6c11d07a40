package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentProfile menghubungkan satu user student dengan satu kost. Maksimal
// satu profile per user; dijaga lewat cek-lalu-insert di service, bukan
// constraint database (lihat DESIGN.md).
type StudentProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HostelID      uuid.UUID `gorm:"type:uuid;index;not null" json:"hostel_id"`
	Hostel        *Hostel   `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	RoomNumber    *string   `gorm:"size:20" json:"room_number,omitempty"`
	GuardianPhone *string   `gorm:"size:30" json:"guardian_phone,omitempty"`
	JoinedAt      time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

func (p *StudentProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
