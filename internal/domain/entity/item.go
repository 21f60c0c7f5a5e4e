package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents a stocked inventory item
type Item struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Slug          string         `gorm:"size:255;unique;not null" json:"slug"`
	HSNSACCode    string         `gorm:"size:50;index;column:hsn_sac_code" json:"hsn_sac_code"`
	Unit          string         `gorm:"size:50;default:'nos'" json:"unit"`
	Quantity      float64        `gorm:"default:0" json:"quantity"`
	QuantityAlert float64        `gorm:"default:0" json:"quantity_alert"`
	Price         int64          `gorm:"default:0" json:"price"` // Stored in cents
	TaxRate       float64        `gorm:"type:decimal(5,4);default:0" json:"tax_rate"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (i *Item) GetPriceDecimal() float64 {
	return float64(i.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (i *Item) SetPriceFromDecimal(price float64) {
	i.Price = int64(price * 100)
}

// IsLowStock reports whether the item has dropped below its alert level
func (i *Item) IsLowStock() bool {
	return i.QuantityAlert > 0 && i.Quantity <= i.QuantityAlert
}

// ItemJSON is a helper struct for JSON marshaling with decimal prices
type ItemJSON struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	HSNSACCode    string    `json:"hsn_sac_code"`
	Unit          string    `json:"unit"`
	Quantity      float64   `json:"quantity"`
	QuantityAlert float64   `json:"quantity_alert"`
	Price         float64   `json:"price"` // Decimal value for JSON
	TaxRate       float64   `json:"tax_rate"`
	LowStock      bool      `json:"low_stock"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MarshalJSON converts Item to JSON with decimal prices
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(ItemJSON{
		ID:            i.ID,
		UserID:        i.UserID,
		Name:          i.Name,
		Slug:          i.Slug,
		HSNSACCode:    i.HSNSACCode,
		Unit:          i.Unit,
		Quantity:      i.Quantity,
		QuantityAlert: i.QuantityAlert,
		Price:         i.GetPriceDecimal(),
		TaxRate:       i.TaxRate,
		LowStock:      i.IsLowStock(),
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	})
}
