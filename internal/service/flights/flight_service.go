package flights

import (
	"context"
	"time"

	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	DeleteReference(ctx context.Context, kind domain.ReferenceKind, id int64) error
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo     repository.FlightRepository
	refs     repository.ReferenceRepository
	cache    FlightCache
	cacheTTL time.Duration
}

func NewFlightService(repo repository.FlightRepository, refs repository.ReferenceRepository, cache FlightCache, cacheTTL time.Duration) *FlightService {
	return &FlightService{repo: repo, refs: refs, cache: cache, cacheTTL: cacheTTL}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if flight.FlightNumber == "" || flight.AirlineID <= 0 || flight.RouteID <= 0 || flight.AircraftID <= 0 {
		return domain.ErrValidation
	}
	if flight.EconomyTotal < 0 || flight.BusinessTotal < 0 || flight.FirstClassTotal < 0 {
		return domain.ErrValidation
	}
	if !flight.ArrivalTime.After(flight.DepartureTime) {
		return domain.ErrValidation
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return nil
}

// DeleteReference removes a reference entity through the integrity guard,
// which refuses while dependent rows exist. The flights cache is dropped
// even for non-flight kinds since route and airline rows shape the listing.
func (s *FlightService) DeleteReference(ctx context.Context, kind domain.ReferenceKind, id int64) error {
	if id <= 0 {
		return domain.ErrValidation
	}
	if err := s.refs.Delete(ctx, kind, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
