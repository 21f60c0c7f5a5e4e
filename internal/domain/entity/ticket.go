package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
)

// Ticket represents a sales ticket raised when goods leave against an order
type Ticket struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID       *uuid.UUID        `gorm:"type:uuid;index" json:"client_id,omitempty"`
	QuotationID    *uuid.UUID        `gorm:"type:uuid;index" json:"quotation_id,omitempty"`
	Date           time.Time         `gorm:"type:date;not null" json:"date"`
	Reference      string            `gorm:"size:100;unique;not null" json:"reference"`
	ClientName     string            `gorm:"size:255" json:"client_name"`
	VehicleNo      *string           `gorm:"size:50;column:vehicle_no" json:"vehicle_no,omitempty"`
	TotalQuantity  float64           `gorm:"type:decimal(15,2);default:0" json:"total_quantity"`
	TotalAmount    float64           `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	TaxRate        float64           `gorm:"type:decimal(5,4);default:0.18" json:"tax_rate"`
	GSTAmount      float64           `gorm:"type:decimal(15,2);default:0;column:gst_amount" json:"gst_amount"`
	GrandTotal     float64           `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Status         enum.TicketStatus `gorm:"default:0" json:"status"`
	Notes          *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User      User         `gorm:"foreignKey:UserID" json:"-"`
	Client    *Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Quotation *Quotation   `gorm:"foreignKey:QuotationID" json:"-"`
	Goods     []TicketItem `gorm:"foreignKey:TicketID" json:"goods,omitempty"`
}

// BeforeCreate generates a UUID before creating a new ticket
func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}

// TicketItem represents one goods line on a sales ticket
type TicketItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TicketID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"ticket_id"`
	SrNo        int            `gorm:"not null" json:"sr_no"`
	Description string         `gorm:"size:500;not null" json:"description"`
	HSNSACCode  string         `gorm:"size:50;column:hsn_sac_code" json:"hsn_sac_code"`
	Quantity    float64        `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Price       float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Ticket Ticket `gorm:"foreignKey:TicketID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ticket item
func (ti *TicketItem) BeforeCreate(tx *gorm.DB) error {
	if ti.ID == uuid.Nil {
		ti.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TicketItem model
func (TicketItem) TableName() string {
	return "ticket_items"
}
