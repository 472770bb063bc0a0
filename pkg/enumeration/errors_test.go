package enumeration

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidMatchesSentinel(t *testing.T) {
	err := Invalid("OrderStatus", "SHIPPED", "COMPLETED", "PENDING", "CANCELLED")

	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, fmt.Errorf("decode body: %w", err), ErrInvalidValue)
	assert.Equal(t, `invalid enumeration value: OrderStatus "SHIPPED" (allowed: COMPLETED, PENDING, CANCELLED)`, err.Error())
}

func TestInvalidWithoutAllowed(t *testing.T) {
	err := Invalid("Size", "XS")
	assert.Equal(t, `invalid enumeration value: Size "XS"`, err.Error())
}

func TestTypeOf(t *testing.T) {
	typ, ok := TypeOf(fmt.Errorf("wrapped: %w", Invalid("Size", "XS")))
	require.True(t, ok)
	assert.Equal(t, "Size", typ)

	_, ok = TypeOf(errors.New("other"))
	assert.False(t, ok)
}
