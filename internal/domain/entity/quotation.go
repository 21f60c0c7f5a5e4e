package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
)

// Quotation represents a price quotation sent to a client
type Quotation struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID       *uuid.UUID           `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Date           time.Time            `gorm:"type:date;not null" json:"date"`
	Reference      string               `gorm:"size:100;unique;not null" json:"reference"`
	ClientName     string               `gorm:"size:255" json:"client_name"`
	Subject        *string              `gorm:"size:255" json:"subject,omitempty"`
	TotalQuantity  float64              `gorm:"type:decimal(15,2);default:0" json:"total_quantity"`
	TotalAmount    float64              `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	PackingCharges float64              `gorm:"type:decimal(15,2);default:0" json:"packing_charges"`
	TaxRate        float64              `gorm:"type:decimal(5,4);default:0.18" json:"tax_rate"`
	GSTAmount      float64              `gorm:"type:decimal(15,2);default:0;column:gst_amount" json:"gst_amount"`
	GrandTotal     float64              `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Status         enum.QuotationStatus `gorm:"default:0" json:"status"`
	Notes          *string              `gorm:"type:text" json:"notes,omitempty"`
	SentAt         *time.Time           `json:"sent_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	DeletedAt      gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User   User            `gorm:"foreignKey:UserID" json:"-"`
	Client *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Goods  []QuotationItem `gorm:"foreignKey:QuotationID" json:"goods,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationItem represents one goods line in a quotation
type QuotationItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
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
	Quotation Quotation `gorm:"foreignKey:QuotationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quotation item
func (qi *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationItem model
func (QuotationItem) TableName() string {
	return "quotation_items"
}
