package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

func TestNewOrder(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p-1", Size: catalog.SizeM, Quantity: 2, PriceCents: 500},
		{ProductID: "p-2", Size: catalog.SizeXXL, Quantity: 1, PriceCents: 1200},
	}
	o, err := NewOrder("", "alice", items)
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, int64(2200), o.TotalCents)
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
}

func TestNewOrderRejectsItems(t *testing.T) {
	tests := []struct {
		name string
		item OrderItem
		want error
	}{
		{"missing product", OrderItem{Size: catalog.SizeS, Quantity: 1}, ErrInvalidItem},
		{"bad size", OrderItem{ProductID: "p", Size: "XS", Quantity: 1}, enumeration.ErrInvalidValue},
		{"zero quantity", OrderItem{ProductID: "p", Size: catalog.SizeS}, ErrInvalidItem},
		{"negative price", OrderItem{ProductID: "p", Size: catalog.SizeS, Quantity: 1, PriceCents: -5}, ErrInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrder("o-1", "bob", []OrderItem{tt.item})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := NewOrder("o-1", "bob", nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestWithStatusAcceptsAnyLegalStatus(t *testing.T) {
	o, err := NewOrder("o-1", "carol", []OrderItem{{ProductID: "p", Size: catalog.SizeL, Quantity: 1}})
	require.NoError(t, err)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cancelled, err := o.WithStatus(StatusCancelled, at)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, at, cancelled.UpdatedAt)
	assert.Equal(t, StatusPending, o.Status)

	// back to pending from cancelled: no transition guard
	again, err := cancelled.WithStatus(StatusPending, at)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, again.Status)

	_, err = o.WithStatus("SHIPPED", at)
	assert.ErrorIs(t, err, enumeration.ErrInvalidValue)
}

func TestNewOrderRejectsDuplicateVariant(t *testing.T) {
	_, err := NewOrder("o-1", "dave", []OrderItem{
		{ProductID: "p-1", Size: catalog.SizeM, Quantity: 1, PriceCents: 900},
		{ProductID: "p-1", Size: catalog.SizeM, Quantity: 2, PriceCents: 900},
	})
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.ErrorContains(t, err, "p-1/M")

	o, err := NewOrder("o-2", "dave", []OrderItem{
		{ProductID: "p-1", Size: catalog.SizeM, Quantity: 1, PriceCents: 900},
		{ProductID: "p-1", Size: catalog.SizeL, Quantity: 2, PriceCents: 900},
	})
	require.NoError(t, err, "the same product in another size is a separate line")
	assert.Equal(t, int64(2700), o.TotalCents)
}
