package application

import (
	"context"
	"errors"

	"github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
)

type Service struct {
	repo ProductRepository
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProduct(ctx context.Context, id, name string, size domain.Size, priceCents int64) (domain.Product, error) {
	p, err := domain.NewProduct(id, name, size, priceCents)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.Get(ctx, id)
}

// CheckVariant reports whether productID is sold in size. An unknown product
// is unavailable, not an error; an invalid size is an error.
func (s *Service) CheckVariant(ctx context.Context, productID string, size domain.Size) (bool, error) {
	if _, err := domain.ParseSize(string(size)); err != nil {
		return false, err
	}
	p, err := s.repo.Get(ctx, productID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.Offers(size), nil
}
