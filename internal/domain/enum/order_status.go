package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus represents the status of a kiosk order
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusCompleted OrderStatus = 1
	OrderStatusCancelled OrderStatus = 2
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusCompleted:
		return "Completed"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

// IsTerminal reports whether an order in this status can be reverted to Pending
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if i < int(OrderStatusPending) || i > int(OrderStatusCancelled) {
			return fmt.Errorf("invalid order status: %d", i)
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = OrderStatusPending
	case "Completed":
		*s = OrderStatusCompleted
	case "Cancelled":
		*s = OrderStatusCancelled
	default:
		return fmt.Errorf("invalid order status: %q", str)
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	var i int
	switch v := value.(type) {
	case int64:
		i = int(v)
	case int:
		i = v
	default:
		return fmt.Errorf("unsupported type for OrderStatus: %T", value)
	}
	if i < int(OrderStatusPending) || i > int(OrderStatusCancelled) {
		return fmt.Errorf("invalid order status: %d", i)
	}
	*s = OrderStatus(i)
	return nil
}
