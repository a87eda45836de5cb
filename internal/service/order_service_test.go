package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluestrek/internal/dto"
	"bluestrek/internal/model"
	"bluestrek/internal/validation"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func boolPtr(b bool) *bool { return &b }

// ── In-memory OrderAPI stub ──────────────────────────────────────────────────

type stubOrderAPI struct {
	mu       sync.Mutex
	clients  []model.Client
	products []model.Product
	orders   []model.Order
	calls    []string

	createErr error
	listErr   error
}

func (s *stubOrderAPI) record(call string) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

func (s *stubOrderAPI) ListClients(_ context.Context) ([]model.Client, error) {
	s.record("clients")
	return s.clients, s.listErr
}

func (s *stubOrderAPI) ListProducts(_ context.Context) ([]model.Product, error) {
	s.record("products")
	return s.products, nil
}

func (s *stubOrderAPI) ListOrders(_ context.Context) ([]model.Order, error) {
	s.record("orders")
	return s.orders, nil
}

func (s *stubOrderAPI) CreateOrder(_ context.Context, req dto.CreateOrderRequest) error {
	s.record("create")
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	s.orders = append(s.orders, model.Order{Quantity: req.Quantity})
	s.mu.Unlock()
	return nil
}

var _ OrderAPI = (*stubOrderAPI)(nil)

func seededOrderAPI() *stubOrderAPI {
	return &stubOrderAPI{
		clients: []model.Client{{ID: 1, Name: "Atelier Nord"}},
		products: []model.Product{{
			Reference:     "TIS-001",
			Designation:   "Tissu rouleau coton",
			UnitLength:    d("10"),
			StockQuantity: d("3.5"),
			RollBased:     boolPtr(true),
		}},
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLoadReferenceData(t *testing.T) {
	api := seededOrderAPI()
	svc := NewOrderService(api, zerolog.Nop())

	clients, products, err := svc.LoadReferenceData(context.Background())
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Len(t, products, 1)
}

func TestLoadReferenceDataFirstErrorWins(t *testing.T) {
	api := seededOrderAPI()
	api.listErr = errors.New("boom")
	svc := NewOrderService(api, zerolog.Nop())

	_, _, err := svc.LoadReferenceData(context.Background())
	assert.Error(t, err)
}

func TestPlaceOrderRefreshesAfterWrite(t *testing.T) {
	api := seededOrderAPI()
	svc := NewOrderService(api, zerolog.Nop())

	client := &api.clients[0]
	product := &api.products[0]

	orders, err := svc.PlaceOrder(context.Background(), client, product, validation.OrderInput{Rolls: "2"})
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	// The list refresh must come strictly after the acknowledged write.
	require.Equal(t, []string{"create", "orders"}, api.calls)
}

func TestPlaceOrderValidationFailureSkipsNetwork(t *testing.T) {
	api := seededOrderAPI()
	svc := NewOrderService(api, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), nil, &api.products[0], validation.OrderInput{Rolls: "2"})
	assert.Equal(t, validation.MissingClient, validation.KindOf(err))
	assert.Empty(t, api.calls)
}

func TestPlaceOrderInsufficientStockSkipsNetwork(t *testing.T) {
	api := seededOrderAPI()
	svc := NewOrderService(api, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), &api.clients[0], &api.products[0], validation.OrderInput{Rolls: "4"})
	assert.Equal(t, validation.InsufficientStock, validation.KindOf(err))
	assert.Empty(t, api.calls)
}

func TestPlaceOrderSubmitFailureSkipsRefresh(t *testing.T) {
	api := seededOrderAPI()
	api.createErr = errors.New("unreachable")
	svc := NewOrderService(api, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), &api.clients[0], &api.products[0], validation.OrderInput{Rolls: "2"})
	require.Error(t, err)
	assert.Equal(t, []string{"create"}, api.calls)
}
