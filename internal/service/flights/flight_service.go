package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airboard/internal/domain"
	"github.com/Domenick1991/airboard/internal/logger"
	"github.com/Domenick1991/airboard/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.FlightRecord, error)
	SetFlights(ctx context.Context, flights []domain.FlightRecord) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List loads raw records (cache first) and builds the flights. The first
// malformed record fails the whole list.
func (s *FlightService) List(ctx context.Context) ([]*domain.Flight, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	flights := make([]*domain.Flight, 0, len(records))
	for i, rec := range records {
		f, err := domain.NewFlight(rec)
		if err != nil {
			return nil, fmt.Errorf("flight #%d: %w", i+1, err)
		}
		flights = append(flights, f)
	}
	return flights, nil
}

func (s *FlightService) records(ctx context.Context) ([]domain.FlightRecord, error) {
	l := logger.GetLogger()

	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err != nil {
			l.Warn().Err(err).Msg("read flights cache")
		} else if cached != nil {
			l.Debug().Int("count", len(cached)).Msg("flights from cache")
			return cached, nil
		}
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	l.Debug().Int("count", len(records)).Msg("flights from repository")

	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, records); err != nil {
			l.Warn().Err(err).Msg("write flights cache")
		}
	}
	return records, nil
}

var _ FlightUseCase = (*FlightService)(nil)
