package entity

// OrderCounter holds the last order number issued for one calendar date.
// Order numbers are a human-facing display label scoped to a day; the order
// UUID is the real identifier.
type OrderCounter struct {
	Date    string `gorm:"size:10;primary_key" json:"date"`
	Counter int    `gorm:"not null;default:0" json:"counter"`
}

// TableName returns the table name for the OrderCounter model
func (OrderCounter) TableName() string {
	return "order_counters"
}
