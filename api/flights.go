package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type createFlightRequest struct {
	FlightNumber         string `json:"flight_number"`
	AirlineID            int64  `json:"airline_id"`
	RouteID              int64  `json:"route_id"`
	AircraftID           int64  `json:"aircraft_id"`
	DepartureTime        string `json:"departure_time"`
	ArrivalTime          string `json:"arrival_time"`
	EconomyTotal         int    `json:"economy_total"`
	EconomyPriceCents    int64  `json:"economy_price_cents"`
	BusinessTotal        int    `json:"business_total"`
	BusinessPriceCents   int64  `json:"business_price_cents"`
	FirstClassTotal      int    `json:"first_class_total"`
	FirstClassPriceCents int64  `json:"first_class_price_cents"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

// RegisterAdmin mounts the reference-data management routes. Access control
// is the outer router's responsibility.
func (h *FlightHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.POST("/flights", h.create)
	router.DELETE("/reference/:kind/:id", h.deleteReference)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_time"})
		return
	}
	arrival, err := time.Parse(time.RFC3339, req.ArrivalTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid arrival_time"})
		return
	}

	flight := &domain.Flight{
		FlightNumber:         req.FlightNumber,
		AirlineID:            req.AirlineID,
		RouteID:              req.RouteID,
		AircraftID:           req.AircraftID,
		DepartureTime:        departure,
		ArrivalTime:          arrival,
		EconomyTotal:         req.EconomyTotal,
		EconomyPriceCents:    req.EconomyPriceCents,
		BusinessTotal:        req.BusinessTotal,
		BusinessPriceCents:   req.BusinessPriceCents,
		FirstClassTotal:      req.FirstClassTotal,
		FirstClassPriceCents: req.FirstClassPriceCents,
	}
	if err := h.service.Create(c.Request.Context(), flight); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) deleteReference(c *gin.Context) {
	kind, err := domain.ParseReferenceKind(c.Param("kind"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	id, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeleteReference(c.Request.Context(), kind, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": gin.H{"kind": string(kind), "id": id}})
}
