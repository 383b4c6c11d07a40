package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hostel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner         *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Address       string    `gorm:"size:255;not null" json:"address"`
	City          string    `gorm:"size:100;not null" json:"city"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	PricePerMonth int64     `gorm:"not null" json:"price_per_month"`
	TotalRooms    int       `gorm:"not null" json:"total_rooms"`
	PhotoURL      *string   `gorm:"type:text" json:"photo_url,omitempty"`
	InviteCode    string    `gorm:"size:6;uniqueIndex;not null" json:"invite_code"`
	IsApproved    bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (h *Hostel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
