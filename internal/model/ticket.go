package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

func ParseTicketStatus(s string) (TicketStatus, error) {
	switch TicketStatus(s) {
	case TicketOpen, TicketInProgress, TicketResolved:
		return TicketStatus(s), nil
	default:
		return "", fmt.Errorf("unknown ticket status %q", s)
	}
}

// Ticket adalah keluhan/permintaan dari student. HostelID didenormalisasi
// dari StudentProfile saat dibuat supaya query per kost murah.
type Ticket struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	StudentProfileID uuid.UUID       `gorm:"type:uuid;index;not null" json:"student_profile_id"`
	StudentProfile   *StudentProfile `gorm:"foreignKey:StudentProfileID" json:"student_profile,omitempty"`
	HostelID         uuid.UUID       `gorm:"type:uuid;index;not null" json:"hostel_id"`
	Hostel           *Hostel         `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	Subject          string          `gorm:"size:150;not null" json:"subject"`
	Body             string          `gorm:"type:text;not null" json:"body"`
	Status           TicketStatus    `gorm:"size:20;not null;default:open" json:"status"`
	OwnerReply       *string         `gorm:"type:text" json:"owner_reply,omitempty"`
	AdminNotes       *string         `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
