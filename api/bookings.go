package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID       int64  `json:"flight_id"`
	SeatClass      string `json:"seat_class"`
	SeatNumber     int    `json:"seat_number"`
	PassengerName  string `json:"passenger_name"`
	PassengerEmail string `json:"passenger_email"`
	Confirmed      bool   `json:"confirmed"`
}

type bookingResponse struct {
	ID             int64  `json:"id"`
	Token          string `json:"token"`
	Status         string `json:"status"`
	FlightID       int64  `json:"flight_id"`
	SeatClass      string `json:"seat_class"`
	SeatNumber     int    `json:"seat_number"`
	PassengerName  string `json:"passenger_name"`
	PassengerEmail string `json:"passenger_email"`
	FareCents      int64  `json:"fare_cents"`
	CreatedAt      string `json:"created_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id/confirm", h.confirm)
	router.DELETE("/:id", h.cancel)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		Token:          b.Token,
		Status:         string(b.Status),
		FlightID:       b.FlightID,
		SeatClass:      string(b.SeatClass),
		SeatNumber:     b.SeatNumber,
		PassengerName:  b.PassengerName,
		PassengerEmail: b.PassengerEmail,
		FareCents:      b.FareCents,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return 0, false
	}
	return id, true
}

func (h *BookingHandler) create(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := domain.ParseSeatClass(req.SeatClass)
	if err != nil {
		abortWithError(c, err)
		return
	}
	status := domain.BookingStatusPending
	if req.Confirmed {
		status = domain.BookingStatusConfirmed
	}

	created, err := h.service.CreateBooking(c.Request.Context(), userID, booking.CreateBookingInput{
		FlightID:       req.FlightID,
		SeatClass:      class,
		SeatNumber:     req.SeatNumber,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		InitialStatus:  status,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) list(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) confirm(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.ConfirmBooking(c.Request.Context(), id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}
