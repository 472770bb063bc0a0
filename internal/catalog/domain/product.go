package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrInvalidProduct  = errors.New("invalid product")
)

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       Size      `json:"size"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewProduct validates the input and assigns an ID when id is empty.
func NewProduct(id, name string, size Size, priceCents int64) (Product, error) {
	if !size.IsValid() {
		return Product{}, invalidSize(string(size))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, errors.Join(ErrInvalidProduct, errors.New("name is required"))
	}
	if priceCents < 0 {
		return Product{}, errors.Join(ErrInvalidProduct, errors.New("price must not be negative"))
	}
	if id == "" {
		id = uuid.NewString()
	}
	return Product{
		ID:         id,
		Name:       name,
		Size:       size,
		PriceCents: priceCents,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Offers reports whether the product is sold in size s.
func (p Product) Offers(s Size) bool {
	return p.Size == s
}
