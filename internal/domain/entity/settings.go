package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryList is an ordered list of category names stored as JSONB. The
// order defines both admin filter order and storefront section order.
type CategoryList []string

func (l CategoryList) Value() (driver.Value, error) {
	if l == nil {
		l = CategoryList{}
	}
	return json.Marshal(l)
}

func (l *CategoryList) Scan(value interface{}) error {
	if value == nil {
		*l = CategoryList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for CategoryList")
}

// KioskSettings is the single process-wide settings record. It gates which
// checkout paths are offered and carries the operational orders-view reset
// watermark. Analytics reads always bypass the watermark.
type KioskSettings struct {
	ID                    uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	OnlinePaymentsEnabled bool         `gorm:"default:true" json:"online_payments_enabled"`
	PayAtCounterEnabled   bool         `gorm:"default:true" json:"pay_at_counter_enabled"`
	Categories            CategoryList `gorm:"type:jsonb" json:"categories"`
	OrdersHiddenBefore    *time.Time   `json:"orders_hidden_before,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *KioskSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KioskSettings model
func (KioskSettings) TableName() string {
	return "kiosk_settings"
}
