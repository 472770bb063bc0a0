package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

type memRepo struct {
	products map[string]domain.Product
	err      error
}

func (r *memRepo) Save(_ context.Context, p domain.Product) error {
	if r.err != nil {
		return r.err
	}
	if r.products == nil {
		r.products = map[string]domain.Product{}
	}
	r.products[p.ID] = p
	return nil
}

func (r *memRepo) Get(_ context.Context, id string) (domain.Product, error) {
	if r.err != nil {
		return domain.Product{}, r.err
	}
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func TestCreateAndGetProduct(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, "p-1", "Tee", domain.SizeL, 1500)
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCreateProductRejectsInvalidSize(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	_, err := svc.CreateProduct(context.Background(), "p-1", "Tee", domain.Size("XS"), 1500)
	assert.ErrorIs(t, err, enumeration.ErrInvalidValue)
	assert.Empty(t, repo.products)
}

func TestCheckVariant(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()
	_, err := svc.CreateProduct(ctx, "p-1", "Tee", domain.SizeXL, 1500)
	require.NoError(t, err)

	ok, err := svc.CheckVariant(ctx, "p-1", domain.SizeXL)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckVariant(ctx, "p-1", domain.SizeS)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.CheckVariant(ctx, "missing", domain.SizeS)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.CheckVariant(ctx, "p-1", domain.Size("xl"))
	assert.ErrorIs(t, err, enumeration.ErrInvalidValue)
}

func TestCheckVariantRepositoryError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&memRepo{err: boom})

	_, err := svc.CheckVariant(context.Background(), "p-1", domain.SizeM)
	assert.ErrorIs(t, err, boom)
}
