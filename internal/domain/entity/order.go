package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemList is an ordered list of item display strings stored as JSONB.
// Quantity is represented by repetition: two units of the same dish appear
// as two identical entries.
type ItemList []string

func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ItemList{}
	}
	return json.Marshal(l)
}

func (l *ItemList) Scan(value interface{}) error {
	if value == nil {
		*l = ItemList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for ItemList")
}

// GivenMap tracks which line items were physically handed out, keyed by the
// item display string. Identical items share one entry, so marking one unit
// given marks the whole matching group.
type GivenMap map[string]bool

func (m GivenMap) Value() (driver.Value, error) {
	if m == nil {
		m = GivenMap{}
	}
	return json.Marshal(m)
}

func (m *GivenMap) Scan(value interface{}) error {
	if value == nil {
		*m = GivenMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported type for GivenMap")
}

// Order represents one checkout submission.
//
// Total is always the pre-tax, pre-fee, pre-tip subtotal. Tip, TaxAmount,
// ConvenienceFee and StripeTotal are separate fields so revenue reporting can
// compute money actually collected without double counting. TaxAmount,
// ConvenienceFee and StripeTotal are zero for pay-at-counter orders.
type Order struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber    int              `gorm:"not null;index" json:"order_number"`
	CustomerName   string           `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail  string           `gorm:"size:255" json:"customer_email,omitempty"`
	Items          ItemList         `gorm:"type:jsonb;not null" json:"items"`
	Total          float64          `gorm:"not null" json:"-"`
	Tip            float64          `gorm:"default:0" json:"-"`
	TaxAmount      float64          `gorm:"default:0" json:"-"`
	ConvenienceFee float64          `gorm:"default:0" json:"-"`
	StripeTotal    float64          `gorm:"default:0" json:"-"`
	PaymentID      *string          `gorm:"size:255" json:"payment_id,omitempty"`
	Paid           bool             `gorm:"default:false" json:"paid"`
	Status         enum.OrderStatus `gorm:"default:0;index" json:"status"`
	GivenItems     GivenMap         `gorm:"type:jsonb" json:"given_items"`
	Notes          string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// MarshalJSON rounds money fields to 2 decimals at the presentation boundary.
// Internal aggregation always works on the unrounded values.
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Total          float64 `json:"total"`
		Tip            float64 `json:"tip"`
		TaxAmount      float64 `json:"tax_amount"`
		ConvenienceFee float64 `json:"convenience_fee"`
		StripeTotal    float64 `json:"stripe_total"`
	}{
		Alias:          Alias(o),
		Total:          RoundMoney(o.Total),
		Tip:            RoundMoney(o.Tip),
		TaxAmount:      RoundMoney(o.TaxAmount),
		ConvenienceFee: RoundMoney(o.ConvenienceFee),
		StripeTotal:    RoundMoney(o.StripeTotal),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.GivenItems == nil {
		o.GivenItems = GivenMap{}
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// PaidOnline reports whether the order was captured through the online payment
// path. The presence of PaymentID, not the Paid flag alone, is what separates
// online from counter payments downstream.
func (o *Order) PaidOnline() bool {
	return o.Paid && o.PaymentID != nil && *o.PaymentID != ""
}

// CollectedAmount returns the money actually received for the order: the full
// captured StripeTotal for online payments, subtotal plus tip otherwise.
// Every revenue aggregate must go through this method.
func (o *Order) CollectedAmount() float64 {
	if o.PaidOnline() && o.StripeTotal > 0 {
		return o.StripeTotal
	}
	return o.Total + o.Tip
}

// RoundMoney rounds a currency amount to 2 decimal places. Used only at
// presentation and export boundaries so rounding error never compounds
// across aggregation.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
