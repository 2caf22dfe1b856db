package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuOption is a selectable variant of a menu item. Extra is the surcharge
// over the base price; zero for free options like spice level.
type MenuOption struct {
	Name  string  `json:"name"`
	Extra float64 `json:"extra"`
}

// OptionList is a list of menu options stored as JSONB
type OptionList []MenuOption

func (l OptionList) Value() (driver.Value, error) {
	if l == nil {
		l = OptionList{}
	}
	return json.Marshal(l)
}

func (l *OptionList) Scan(value interface{}) error {
	if value == nil {
		*l = OptionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for OptionList")
}

// MenuItem represents one dish on the storefront menu
type MenuItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"size:255;unique;not null" json:"name"`
	Category  string     `gorm:"size:100;index" json:"category"`
	Price     float64    `gorm:"not null" json:"price"`
	Options   OptionList `gorm:"type:jsonb" json:"options"`
	Available bool       `gorm:"default:true" json:"available"`
	SortOrder int        `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
