package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("", "  Linen shirt ", SizeM, 4500)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Linen shirt", p.Name)
	assert.Equal(t, SizeM, p.Size)
	assert.False(t, p.CreatedAt.IsZero())
	assert.True(t, p.Offers(SizeM))
	assert.False(t, p.Offers(SizeL))
}

func TestNewProductKeepsID(t *testing.T) {
	p, err := NewProduct("prod-1", "Hoodie", SizeXL, 0)
	require.NoError(t, err)
	assert.Equal(t, "prod-1", p.ID)
}

func TestNewProductRejects(t *testing.T) {
	_, err := NewProduct("", "Hoodie", Size("XS"), 100)
	assert.ErrorIs(t, err, enumeration.ErrInvalidValue)

	_, err = NewProduct("", "   ", SizeS, 100)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = NewProduct("", "Hoodie", SizeS, -1)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}
