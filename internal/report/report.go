// Package report builds the airport board views from computed flights.
package report

import (
	"math"

	"github.com/Domenick1991/airboard/internal/domain"
)

type Diagnostic struct {
	Index             int    `json:"index"`
	RawDuration       int    `json:"raw_duration_minutes"`
	RawDurationHuman  string `json:"raw_duration"`
	DepartureTZ       string `json:"departure_tz"`
	ArrivalTZ         string `json:"arrival_tz"`
	TZDifference      int    `json:"tz_difference_minutes"`
	TZDifferenceHuman string `json:"tz_difference"`
}

type Summary struct {
	FlightCount      int    `json:"flight_count"`
	AvgDuration      int    `json:"avg_duration_minutes"`
	AvgDurationHuman string `json:"avg_duration"`
}

type BoardRow struct {
	Index                    int    `json:"index"`
	From                     string `json:"from"`
	DepartureLocalTime       string `json:"departure_local_time"`
	DepartureDestinationTime string `json:"departure_destination_time"`
	To                       string `json:"to"`
	ArrivalOriginTime        string `json:"arrival_origin_time"`
	ArrivalLocalTime         string `json:"arrival_local_time"`
	Duration                 int    `json:"duration_minutes"`
	DurationHuman            string `json:"duration"`
}

// Report holds the three views. Summary is nil for an empty flight list.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     *Summary     `json:"summary,omitempty"`
	Board       []BoardRow   `json:"board"`
}

// Build keeps the input order; rows are numbered from 1.
func Build(flights []*domain.Flight) Report {
	return Report{
		Diagnostics: Diagnostics(flights),
		Summary:     Summarize(flights),
		Board:       Board(flights),
	}
}

func Diagnostics(flights []*domain.Flight) []Diagnostic {
	out := make([]Diagnostic, 0, len(flights))
	for i, f := range flights {
		diff := domain.TZOffsetDifference(f.FromTZ(), f.ToTZ())
		out = append(out, Diagnostic{
			Index:             i + 1,
			RawDuration:       f.RawDuration(),
			RawDurationHuman:  FormatDuration(f.RawDuration()),
			DepartureTZ:       f.FromAirport().TimeZone,
			ArrivalTZ:         f.ToAirport().TimeZone,
			TZDifference:      diff,
			TZDifferenceHuman: FormatDuration(diff),
		})
	}
	return out
}

// Summarize averages full durations, rounding half away from zero.
func Summarize(flights []*domain.Flight) *Summary {
	if len(flights) == 0 {
		return nil
	}
	total := 0
	for _, f := range flights {
		total += f.FullDuration()
	}
	avg := int(math.Round(float64(total) / float64(len(flights))))
	return &Summary{
		FlightCount:      len(flights),
		AvgDuration:      avg,
		AvgDurationHuman: FormatDuration(avg),
	}
}

func Board(flights []*domain.Flight) []BoardRow {
	rows := make([]BoardRow, 0, len(flights))
	for i, f := range flights {
		rows = append(rows, BoardRow{
			Index:                    i + 1,
			From:                     f.FromAirport().Title(),
			DepartureLocalTime:       f.FromTime(),
			DepartureDestinationTime: f.DepartureInDestinationTime(),
			To:                       f.ToAirport().Title(),
			ArrivalOriginTime:        f.ArrivalInOriginTime(),
			ArrivalLocalTime:         f.ToTime(),
			Duration:                 f.FullDuration(),
			DurationHuman:            FormatDuration(f.FullDuration()),
		})
	}
	return rows
}
