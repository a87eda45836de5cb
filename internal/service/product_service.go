package service

import (
	"context"

	"bluestrek/internal/model"
)

// ProductAPI is the slice of the remote API the product list needs.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	api ProductAPI
}

func NewProductService(api ProductAPI) ProductService {
	return &productService{api: api}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.api.ListProducts(ctx)
}
