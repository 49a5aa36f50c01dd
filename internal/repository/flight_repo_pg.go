package repository

import (
	"context"

	"github.com/Domenick1991/airboard/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightRepository returns every stored flight in display order.
type FlightRepository interface {
	GetAll(ctx context.Context) ([]domain.FlightRecord, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const selectFlights = `SELECT
	fa.city, fa.name, fa.code, fa.timezone, f.departure_time,
	ta.city, ta.name, ta.code, ta.timezone, f.arrival_time
FROM flights f
JOIN airports fa ON fa.id = f.from_airport_id
JOIN airports ta ON ta.id = f.to_airport_id
ORDER BY f.id`

func (r *PGFlightRepository) GetAll(ctx context.Context) ([]domain.FlightRecord, error) {
	rows, err := r.db.Query(ctx, selectFlights)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightRecord, 0)
	for rows.Next() {
		var f domain.FlightRecord
		if err := rows.Scan(
			&f.FromAirport.City, &f.FromAirport.Name, &f.FromAirport.Code, &f.FromAirport.TimeZone, &f.FromTime,
			&f.ToAirport.City, &f.ToAirport.Name, &f.ToAirport.Code, &f.ToAirport.TimeZone, &f.ToTime,
		); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
