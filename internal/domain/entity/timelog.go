package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeLog represents hours logged by a user against a work description
type TimeLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID    *uuid.UUID     `gorm:"type:uuid;index" json:"client_id,omitempty"`
	TicketID    *uuid.UUID     `gorm:"type:uuid;index" json:"ticket_id,omitempty"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Hours       float64        `gorm:"type:decimal(5,2);not null" json:"hours"`
	Description string         `gorm:"size:500;not null" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Ticket *Ticket `gorm:"foreignKey:TicketID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new time log
func (t *TimeLog) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TimeLog model
func (TimeLog) TableName() string {
	return "time_logs"
}
