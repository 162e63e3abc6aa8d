package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightUseCase) DeleteReference(ctx context.Context, kind domain.ReferenceKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.Flight{{ID: 1, FlightNumber: "SU100"}}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SU100")
}

func TestFlightHandler_get_InvalidID(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/x", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID")
}

func TestFlightHandler_deleteReference_Conflict(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/admin/reference/flight/1", nil)
	c.Params = gin.Params{{Key: "kind", Value: "flight"}, {Key: "id", Value: "1"}}

	mockService.On("DeleteReference", c.Request.Context(), domain.KindFlight, int64(1)).
		Return(domain.ReferencedBy(domain.KindFlight, 1, "active bookings"))

	handler.deleteReference(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "active bookings")
}

func TestFlightHandler_deleteReference_Success(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/admin/reference/airline/2", nil)
	c.Params = gin.Params{{Key: "kind", Value: "airline"}, {Key: "id", Value: "2"}}

	mockService.On("DeleteReference", c.Request.Context(), domain.KindAirline, int64(2)).Return(nil)

	handler.deleteReference(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFlightHandler_deleteReference_UnknownKind(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/admin/reference/cities/2", nil)
	c.Params = gin.Params{{Key: "kind", Value: "cities"}, {Key: "id", Value: "2"}}

	handler.deleteReference(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "DeleteReference")
}
