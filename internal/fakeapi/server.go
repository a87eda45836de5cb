package fakeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bluestrek/internal/apierror"
	"bluestrek/internal/dto"
	"bluestrek/internal/validation"
)

// Server bundles the mock API's routes, store and seeded accounts.
type Server struct {
	store  *Store
	users  []User
	secret string
	log    zerolog.Logger
}

// New builds a mock server around the given store. secret signs session
// tokens; users are the accounts login accepts.
func New(store *Store, secret string, users []User, log zerolog.Logger) *Server {
	return &Server{store: store, users: users, secret: secret, log: log}
}

// Engine returns the configured gin engine. Middleware order: request id
// first so the logger and recovery can tag their events.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(s.requestID())
	r.Use(s.logger())
	r.Use(s.recovery())

	r.POST("/api/login", s.loginHandler)

	api := r.Group("/api", s.requireAuth())
	{
		api.GET("/clients", s.listClients)
		api.GET("/products", s.listProducts)
		api.GET("/orders", s.listOrders)
		api.GET("/orders/stats/daily", s.dailyStats)
		api.POST("/orders", s.createOrder)
		api.GET("/purchases", s.listPurchases)
		api.POST("/purchases", s.createPurchase)
		api.PUT("/purchases/:id", s.updatePurchase)
	}

	return r
}

// bindAndValidate decodes the JSON body and runs struct validation; on
// failure it writes the 400 itself and reports false.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("malformed request body"))
		return false
	}
	if err := validation.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid request: "+err.Error()))
		return false
	}
	return true
}

func (s *Server) listClients(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Clients())
}

func (s *Server) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Products())
}

func (s *Server) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Orders())
}

func (s *Server) listPurchases(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Purchases())
}

func (s *Server) createOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	switch err := s.store.CreateOrder(req); {
	case err == nil:
		c.Status(http.StatusCreated)
	case errors.Is(err, ErrInsufficientStock):
		c.JSON(http.StatusConflict, apierror.New("insufficient stock"))
	case errors.Is(err, ErrClientNotFound), errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("could not record order"))
	}
}

func (s *Server) createPurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}

	p, err := s.store.CreatePurchase(req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePurchase(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid purchase id"))
		return
	}

	var req dto.UpdatePurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}

	p, err := s.store.UpdatePurchase(id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) dailyStats(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("month must be 1..12"))
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("year is required"))
		return
	}
	c.JSON(http.StatusOK, s.store.DailyTotals(month, year))
}
