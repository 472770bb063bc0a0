package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalog "github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderExists   = errors.New("order already exists")
	ErrEmptyOrder    = errors.New("order has no items")
	ErrInvalidItem   = errors.New("invalid order item")
)

type Order struct {
	ID         string      `json:"id"`
	Customer   string      `json:"customer"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"total_cents"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ProductID  string       `json:"product_id"`
	Size       catalog.Size `json:"size"`
	Quantity   int          `json:"quantity"`
	PriceCents int64        `json:"price_cents"`
}

func (i OrderItem) Validate() error {
	if i.ProductID == "" {
		return errors.Join(ErrInvalidItem, errors.New("product_id is required"))
	}
	if _, err := catalog.ParseSize(string(i.Size)); err != nil {
		return err
	}
	if i.Quantity <= 0 {
		return errors.Join(ErrInvalidItem, errors.New("quantity must be positive"))
	}
	if i.PriceCents < 0 {
		return errors.Join(ErrInvalidItem, errors.New("price must not be negative"))
	}
	return nil
}

type variant struct {
	productID string
	size      catalog.Size
}

// NewOrder builds a PENDING order. An empty id is replaced with a fresh UUID.
// Each product and size pair may appear on one line only.
func NewOrder(id, customer string, items []OrderItem) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	var total int64
	lines := make(map[variant]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Order{}, err
		}
		v := variant{productID: item.ProductID, size: item.Size}
		if _, dup := lines[v]; dup {
			return Order{}, errors.Join(ErrInvalidItem, fmt.Errorf("duplicate line for %s/%s", item.ProductID, item.Size))
		}
		lines[v] = struct{}{}
		total += int64(item.Quantity) * item.PriceCents
	}
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	return Order{
		ID:         id,
		Customer:   customer,
		Items:      items,
		TotalCents: total,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// WithStatus returns a copy of o labelled st. No transition rule is applied.
func (o Order) WithStatus(st OrderStatus, at time.Time) (Order, error) {
	if !st.IsValid() {
		return Order{}, invalidStatus(string(st))
	}
	o.Status = st
	o.UpdatedAt = at.UTC()
	return o, nil
}
