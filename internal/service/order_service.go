package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bluestrek/internal/dto"
	"bluestrek/internal/model"
	"bluestrek/internal/validation"
)

// OrderAPI is the slice of the remote API the order screen needs.
type OrderAPI interface {
	ListClients(ctx context.Context) ([]model.Client, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) error
}

type OrderService interface {
	// LoadReferenceData fetches clients and products concurrently.
	LoadReferenceData(ctx context.Context) ([]model.Client, []model.Product, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	// PlaceOrder validates, submits, and — strictly after the write is
	// acknowledged — refreshes and returns the order list.
	PlaceOrder(ctx context.Context, client *model.Client, product *model.Product, in validation.OrderInput) ([]model.Order, error)
}

type orderService struct {
	api OrderAPI
	log zerolog.Logger
}

func NewOrderService(api OrderAPI, log zerolog.Logger) OrderService {
	return &orderService{api: api, log: log}
}

// LoadReferenceData issues the two reference fetches in parallel and joins
// them; the first error wins. No other cross-call coordination exists in
// this module.
func (s *orderService) LoadReferenceData(ctx context.Context) ([]model.Client, []model.Product, error) {
	var (
		wg       sync.WaitGroup
		clients  []model.Client
		products []model.Product
		cErr     error
		pErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		clients, cErr = s.api.ListClients(ctx)
	}()
	go func() {
		defer wg.Done()
		products, pErr = s.api.ListProducts(ctx)
	}()
	wg.Wait()

	if cErr != nil {
		return nil, nil, cErr
	}
	if pErr != nil {
		return nil, nil, pErr
	}
	return clients, products, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.api.ListOrders(ctx)
}

func (s *orderService) PlaceOrder(ctx context.Context, client *model.Client, product *model.Product, in validation.OrderInput) ([]model.Order, error) {
	normalized, err := validation.ValidateOrder(client, product, in)
	if err != nil {
		return nil, err
	}

	req := normalized.Request(client.ID, product.Reference)
	if err := s.api.CreateOrder(ctx, req); err != nil {
		// The form stays populated screen-side; the user resubmits.
		return nil, err
	}

	s.log.Info().
		Str("product", product.Reference).
		Str("quantity", normalized.Quantity.String()).
		Msg("order placed")

	// Refresh is sequenced after the write acknowledgment on purpose.
	return s.api.ListOrders(ctx)
}
