package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/Domenick1991/airboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// fixtures keeps airports by code so flights can reference them.
type fixtures struct {
	Airports map[string]domain.Airport `yaml:"airports"`
	Flights  []struct {
		From      string `yaml:"from"`
		Departure string `yaml:"departure"`
		To        string `yaml:"to"`
		Arrival   string `yaml:"arrival"`
	} `yaml:"flights"`
}

// FileFlightRepository reads flights from a YAML fixtures file on every call.
type FileFlightRepository struct {
	path string
}

func NewFileFlightRepository(path string) FlightRepository {
	return &FileFlightRepository{path: path}
}

func (r *FileFlightRepository) GetAll(_ context.Context) ([]domain.FlightRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	flights := make([]domain.FlightRecord, 0, len(fx.Flights))
	for i, f := range fx.Flights {
		from, ok := fx.airport(f.From)
		if !ok {
			return nil, fmt.Errorf("flight #%d: unknown airport %q", i+1, f.From)
		}
		to, ok := fx.airport(f.To)
		if !ok {
			return nil, fmt.Errorf("flight #%d: unknown airport %q", i+1, f.To)
		}
		flights = append(flights, domain.FlightRecord{
			FromAirport: from,
			FromTime:    f.Departure,
			ToAirport:   to,
			ToTime:      f.Arrival,
		})
	}
	return flights, nil
}

func (fx fixtures) airport(code string) (domain.Airport, bool) {
	a, ok := fx.Airports[code]
	if ok && a.Code == "" {
		a.Code = code
	}
	return a, ok
}

var _ FlightRepository = (*FileFlightRepository)(nil)
