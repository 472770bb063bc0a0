package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

// OrderStatus is the lifecycle label of an order. It is a label only: any
// status may follow any other.
type OrderStatus string

const (
	StatusCompleted OrderStatus = "COMPLETED"
	StatusPending   OrderStatus = "PENDING"
	StatusCancelled OrderStatus = "CANCELLED"
)

const orderStatusType = "OrderStatus"

// OrderStatuses lists the legal statuses. The order carries no meaning.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusCompleted, StatusPending, StatusCancelled}
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.IsValid() {
		return "", invalidStatus(s)
	}
	return st, nil
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, invalidStatus(string(s))
	}
	return []byte(s), nil
}

func (s *OrderStatus) UnmarshalText(text []byte) error {
	st, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Value stores the status as its canonical name.
func (s OrderStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, invalidStatus(string(s))
	}
	return string(s), nil
}

func (s *OrderStatus) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	case nil:
		return invalidStatus("")
	default:
		return fmt.Errorf("scan %s: unsupported source type %T", orderStatusType, src)
	}
}

func invalidStatus(v string) error {
	all := OrderStatuses()
	allowed := make([]string, 0, len(all))
	for _, st := range all {
		allowed = append(allowed, string(st))
	}
	return enumeration.Invalid(orderStatusType, v, allowed...)
}
