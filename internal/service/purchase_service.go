package service

import (
	"context"

	"github.com/rs/zerolog"

	"bluestrek/internal/dto"
	"bluestrek/internal/model"
	"bluestrek/internal/validation"
)

// PurchaseAPI is the slice of the remote API the purchase table needs.
type PurchaseAPI interface {
	ListPurchases(ctx context.Context) ([]model.Purchase, error)
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) error
	UpdatePurchase(ctx context.Context, id int64, req dto.UpdatePurchaseRequest) error
}

type PurchaseService interface {
	ListPurchases(ctx context.Context) ([]model.Purchase, error)
	// CreatePurchase validates the new-row fields, posts the line, then
	// refreshes and returns the purchase list.
	CreatePurchase(ctx context.Context, in validation.PurchaseInput) ([]model.Purchase, error)
	// UpdatePurchase validates an in-place edit of an existing line and
	// persists it, then refreshes.
	UpdatePurchase(ctx context.Context, id int64, quantity, price string) ([]model.Purchase, error)
}

type purchaseService struct {
	api PurchaseAPI
	log zerolog.Logger
}

func NewPurchaseService(api PurchaseAPI, log zerolog.Logger) PurchaseService {
	return &purchaseService{api: api, log: log}
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	return s.api.ListPurchases(ctx)
}

func (s *purchaseService) CreatePurchase(ctx context.Context, in validation.PurchaseInput) ([]model.Purchase, error) {
	req, err := validation.ValidatePurchaseCreate(in)
	if err != nil {
		return nil, err
	}
	if err := s.api.CreatePurchase(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info().Str("product", req.ProductReference).Msg("purchase recorded")
	return s.api.ListPurchases(ctx)
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, id int64, quantity, price string) ([]model.Purchase, error) {
	req, err := validation.ValidatePurchaseUpdate(quantity, price)
	if err != nil {
		return nil, err
	}
	if err := s.api.UpdatePurchase(ctx, id, req); err != nil {
		return nil, err
	}

	s.log.Info().Int64("purchase_id", id).Msg("purchase updated")
	return s.api.ListPurchases(ctx)
}
