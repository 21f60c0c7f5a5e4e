package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
)

// Challan represents a delivery challan accompanying goods in transit.
// Challans track movement only and never carry prices.
type Challan struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID      *uuid.UUID         `gorm:"type:uuid;index" json:"client_id,omitempty"`
	TicketID      *uuid.UUID         `gorm:"type:uuid;index" json:"ticket_id,omitempty"`
	Date          time.Time          `gorm:"type:date;not null" json:"date"`
	Reference     string             `gorm:"size:100;unique;not null" json:"reference"`
	ClientName    string             `gorm:"size:255" json:"client_name"`
	Destination   *string            `gorm:"size:255" json:"destination,omitempty"`
	VehicleNo     *string            `gorm:"size:50;column:vehicle_no" json:"vehicle_no,omitempty"`
	TotalQuantity float64            `gorm:"type:decimal(15,2);default:0" json:"total_quantity"`
	Status        enum.ChallanStatus `gorm:"default:0" json:"status"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	DeliveredAt   *time.Time         `json:"delivered_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User   User          `gorm:"foreignKey:UserID" json:"-"`
	Client *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Ticket *Ticket       `gorm:"foreignKey:TicketID" json:"-"`
	Goods  []ChallanItem `gorm:"foreignKey:ChallanID" json:"goods,omitempty"`
}

// BeforeCreate generates a UUID before creating a new challan
func (c *Challan) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Challan model
func (Challan) TableName() string {
	return "challans"
}

// ChallanItem represents one goods line on a delivery challan
type ChallanItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ChallanID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"challan_id"`
	SrNo        int            `gorm:"not null" json:"sr_no"`
	Description string         `gorm:"size:500;not null" json:"description"`
	HSNSACCode  string         `gorm:"size:50;column:hsn_sac_code" json:"hsn_sac_code"`
	Quantity    float64        `gorm:"type:decimal(15,2);not null" json:"quantity"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Challan Challan `gorm:"foreignKey:ChallanID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new challan item
func (ci *ChallanItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ChallanItem model
func (ChallanItem) TableName() string {
	return "challan_items"
}
