// Package fakeapi is an in-process stand-in for the remote Bluestrek API:
// the same routes, bodies and status codes, backed by an in-memory store.
// The client test suite runs against it, and cmd/mockapi serves it for
// local development against a blank backend.
package fakeapi

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bluestrek/internal/dto"
	"bluestrek/internal/model"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrPurchaseNotFound  = errors.New("purchase not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Store is the mock API's state. All access goes through the mutex; gin
// handlers run concurrently.
type Store struct {
	mu        sync.Mutex
	clients   []model.Client
	products  []model.Product
	purchases []model.Purchase
	orders    []model.Order
	nextID    int64
	now       func() time.Time
}

// NewStore returns an empty store. Call Seed for the development dataset.
func NewStore() *Store {
	return &Store{nextID: 1, now: time.Now}
}

// Seed loads a small catalog: two roll products, one plain product, two
// clients and one historical purchase.
func (s *Store) Seed() {
	boolPtr := func(b bool) *bool { return &b }

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = []model.Client{
		{ID: 1, Name: "Atelier Nord"},
		{ID: 2, Name: "Maison Laurent"},
	}
	s.products = []model.Product{
		{
			Reference:   "TIS-001",
			Designation: "Tissu rouleau coton",
			UnitLength:  decimal.NewFromInt(10),
			// 3 whole rolls and half of a fourth
			StockQuantity: decimal.RequireFromString("3.5"),
			UnitPrice:     decimal.NewFromInt(120),
			RollBased:     boolPtr(true),
		},
		{
			Reference:     "TIS-002",
			Designation:   "Rouleau lin naturel",
			UnitLength:    decimal.NewFromInt(25),
			StockQuantity: decimal.NewFromInt(8),
			UnitPrice:     decimal.NewFromInt(300),
		},
		{
			Reference:     "BTN-010",
			Designation:   "Boutons nacre x100",
			StockQuantity: decimal.NewFromInt(42),
			UnitPrice:     decimal.NewFromInt(15),
			RollBased:     boolPtr(false),
		},
	}
	s.purchases = []model.Purchase{
		{
			ID:                1,
			ProductReference:  "TIS-001",
			Designation:       "Tissu rouleau coton",
			QuantityPurchased: decimal.NewFromInt(5),
			PurchasePrice:     decimal.NewFromInt(95),
			PurchaseDate:      "2026-08-01",
		},
	}
	s.nextID = 2
}

// SetClock overrides the store clock. Tests pin it for stable order dates.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Store) Clients() []model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Client(nil), s.clients...)
}

func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Product(nil), s.products...)
}

func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.orders...)
}

func (s *Store) Purchases() []model.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Purchase(nil), s.purchases...)
}

// CreateOrder records an order and decrements the product's stock. Roll
// orders arrive in meters and convert to fractional roll units; plain
// orders decrement the unit count directly. The server re-checks stock —
// the client validated, but another device may have ordered in between.
func (s *Store) CreateOrder(req dto.CreateOrderRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := s.findClient(req.ClientID)
	if client == nil {
		return ErrClientNotFound
	}
	product := s.findProduct(req.ProductReference)
	if product == nil {
		return ErrProductNotFound
	}

	var consumedRolls decimal.Decimal
	meters := decimal.Zero
	if req.MetersOrdered != nil && req.MetersOrdered.IsPositive() {
		if product.UnitLength.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: %s is not sold in meters", ErrProductNotFound, product.Reference)
		}
		meters = *req.MetersOrdered
		consumedRolls = meters.Div(product.UnitLength)
	} else {
		consumedRolls = req.Quantity
	}

	if consumedRolls.GreaterThan(product.StockQuantity) {
		return ErrInsufficientStock
	}
	product.StockQuantity = product.StockQuantity.Sub(consumedRolls)

	s.orders = append(s.orders, model.Order{
		ClientName:         client.Name,
		ProductDesignation: product.Designation,
		Quantity:           req.Quantity,
		MetersOrdered:      meters,
		OrderDate:          s.now().Format("2006-01-02"),
	})
	return nil
}

// CreatePurchase appends a purchase line. The referenced product must exist;
// its stock is not touched — receiving goods into stock is a separate
// warehouse flow on the real backend.
func (s *Store) CreatePurchase(req dto.CreatePurchaseRequest) (model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.findProduct(req.ProductReference)
	if product == nil {
		return model.Purchase{}, ErrProductNotFound
	}

	p := model.Purchase{
		ID:                s.nextID,
		ProductReference:  product.Reference,
		Designation:       product.Designation,
		QuantityPurchased: req.QuantityPurchased,
		PurchasePrice:     req.PurchasePrice,
		PurchaseDate:      s.now().Format("2006-01-02"),
	}
	s.nextID++
	s.purchases = append(s.purchases, p)
	return p, nil
}

// UpdatePurchase overwrites quantity and price of an existing line.
func (s *Store) UpdatePurchase(id int64, req dto.UpdatePurchaseRequest) (model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.purchases {
		if s.purchases[i].ID == id {
			s.purchases[i].QuantityPurchased = req.QuantityPurchased
			s.purchases[i].PurchasePrice = req.PurchasePrice
			return s.purchases[i], nil
		}
	}
	return model.Purchase{}, ErrPurchaseNotFound
}

// DailyTotals sums order quantities per day for one month. Only days with
// at least one order appear, matching the real endpoint.
func (s *Store) DailyTotals(month, year int) []dto.DailyTotal {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	byDay := make(map[string]decimal.Decimal)
	for _, o := range s.orders {
		if len(o.OrderDate) < len(prefix) || o.OrderDate[:len(prefix)] != prefix {
			continue
		}
		byDay[o.OrderDate] = byDay[o.OrderDate].Add(o.Quantity)
	}

	out := make([]dto.DailyTotal, 0, len(byDay))
	for day, total := range byDay {
		out = append(out, dto.DailyTotal{Day: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func (s *Store) findClient(id int64) *model.Client {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return &s.clients[i]
		}
	}
	return nil
}

func (s *Store) findProduct(reference string) *model.Product {
	for i := range s.products {
		if s.products[i].Reference == reference {
			return &s.products[i]
		}
	}
	return nil
}
