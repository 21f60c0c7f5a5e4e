package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings represents user-specific application settings
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// General settings
	Language   string `gorm:"size:10;default:'en'" json:"language"`
	Timezone   string `gorm:"size:50;default:'Asia/Kolkata'" json:"timezone"`
	Currency   string `gorm:"size:10;default:'INR'" json:"currency"`
	DateFormat string `gorm:"size:20;default:'DD/MM/YYYY'" json:"date_format"`

	// Document defaults applied to new quotations and tickets
	DefaultTaxRate        float64 `gorm:"type:decimal(5,4);default:0.18" json:"default_tax_rate"`
	DefaultPackingCharges float64 `gorm:"type:decimal(15,2);default:0" json:"default_packing_charges"`
	ItemsPerPage          int     `gorm:"default:15" json:"items_per_page"`

	// Notification settings
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	LowStockAlerts     bool `gorm:"default:true" json:"low_stock_alerts"`

	// Appearance settings
	Theme       string `gorm:"size:20;default:'light'" json:"theme"`
	CompactMode bool   `gorm:"default:false" json:"compact_mode"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
