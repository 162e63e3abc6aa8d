package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) Delete(ctx context.Context, kind domain.ReferenceKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sampleFlight() domain.Flight {
	return domain.Flight{
		ID:                  1,
		FlightNumber:        "SU100",
		AirlineID:           1,
		RouteID:             1,
		AircraftID:          1,
		DepartureTime:       time.Now().Add(24 * time.Hour),
		ArrivalTime:         time.Now().Add(27 * time.Hour),
		EconomyTotal:        150,
		EconomyAvailable:    150,
		BusinessTotal:       20,
		BusinessAvailable:   20,
		FirstClassTotal:     4,
		FirstClassAvailable: 4,
	}
}

func TestFlightService_List_FromCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRefs := &MockReferenceRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockRefs, mockCache, time.Minute)

	ctx := context.Background()
	cached := []domain.Flight{sampleFlight()}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheMissFillsCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRefs := &MockReferenceRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockRefs, mockCache, time.Minute)

	ctx := context.Background()
	fromDB := []domain.Flight{sampleFlight()}
	mockCache.On("GetFlights", ctx).Return([]domain.Flight(nil), nil).Once()
	mockRepo.On("List", ctx).Return(fromDB, nil).Once()
	mockCache.On("SetFlights", ctx, fromDB).Return(nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, fromDB, flights)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRefs := &MockReferenceRepository{}
	service := NewFlightService(mockRepo, mockRefs, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrFlightNotFound).Once()

	flight, err := service.GetByID(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	assert.Nil(t, flight)
}

func TestFlightService_Create_Validation(t *testing.T) {
	service := NewFlightService(&MockFlightRepository{}, &MockReferenceRepository{}, nil, time.Minute)
	ctx := context.Background()

	flight := sampleFlight()
	flight.FlightNumber = ""
	assert.ErrorIs(t, service.Create(ctx, &flight), domain.ErrValidation)

	flight = sampleFlight()
	flight.ArrivalTime = flight.DepartureTime
	assert.ErrorIs(t, service.Create(ctx, &flight), domain.ErrValidation)
}

func TestFlightService_Create_InvalidatesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRefs := &MockReferenceRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockRefs, mockCache, time.Minute)

	ctx := context.Background()
	flight := sampleFlight()
	mockRepo.On("Create", ctx, &flight).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	assert.NoError(t, service.Create(ctx, &flight))
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_DeleteReference_Conflict(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRefs := &MockReferenceRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockRefs, mockCache, time.Minute)

	ctx := context.Background()
	conflict := domain.ReferencedBy(domain.KindFlight, 1, "active bookings")
	mockRefs.On("Delete", ctx, domain.KindFlight, int64(1)).Return(conflict).Once()

	err := service.DeleteReference(ctx, domain.KindFlight, 1)

	assert.ErrorIs(t, err, domain.ErrReferenced)
	mockCache.AssertNotCalled(t, "InvalidateFlights")
}

func TestFlightService_DeleteReference_Success(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRefs := &MockReferenceRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockRefs, mockCache, time.Minute)

	ctx := context.Background()
	mockRefs.On("Delete", ctx, domain.KindAirline, int64(2)).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	assert.NoError(t, service.DeleteReference(ctx, domain.KindAirline, 2))
	mockRefs.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_List_RepoError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRefs := &MockReferenceRepository{}
	service := NewFlightService(mockRepo, mockRefs, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("List", ctx).Return([]domain.Flight(nil), domain.Transient(errors.New("connection refused"))).Once()

	flights, err := service.List(ctx)

	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.Nil(t, flights)
}
