package domain

import "fmt"

// FlightRecord is a flight as the storage returns it, before any parsing.
type FlightRecord struct {
	FromAirport Airport `json:"from_airport"`
	FromTime    string  `json:"from_time"`
	ToAirport   Airport `json:"to_airport"`
	ToTime      string  `json:"to_time"`
}

// Flight is immutable; every derived value is computed in NewFlight.
type Flight struct {
	fromAirport Airport
	fromTime    string
	toAirport   Airport
	toTime      string

	fromTZ       TZOffset
	toTZ         TZOffset
	fromMinutes  int
	toMinutes    int
	rawDuration  int
	tzDifference int
	fullDuration int
}

func NewFlight(rec FlightRecord) (*Flight, error) {
	fromMinutes, err := MinutesFromStartOfDay(rec.FromTime)
	if err != nil {
		return nil, fmt.Errorf("departure time: %w", err)
	}
	toMinutes, err := MinutesFromStartOfDay(rec.ToTime)
	if err != nil {
		return nil, fmt.Errorf("arrival time: %w", err)
	}
	fromTZ, err := ParseTZOffset(rec.FromAirport.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("airport %s: %w", rec.FromAirport.Code, err)
	}
	toTZ, err := ParseTZOffset(rec.ToAirport.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("airport %s: %w", rec.ToAirport.Code, err)
	}

	raw := rawDuration(fromMinutes, toMinutes)
	return &Flight{
		fromAirport:  rec.FromAirport,
		fromTime:     rec.FromTime,
		toAirport:    rec.ToAirport,
		toTime:       rec.ToTime,
		fromTZ:       fromTZ,
		toTZ:         toTZ,
		fromMinutes:  fromMinutes,
		toMinutes:    toMinutes,
		rawDuration:  raw,
		tzDifference: TZOffsetDifference(fromTZ, toTZ),
		fullDuration: FullDuration(raw, fromTZ, toTZ),
	}, nil
}

func (f *Flight) FromAirport() Airport { return f.fromAirport }
func (f *Flight) FromTime() string { return f.fromTime }
func (f *Flight) ToAirport() Airport { return f.toAirport }
func (f *Flight) ToTime() string { return f.toTime }
func (f *Flight) FromTZ() TZOffset { return f.fromTZ }
func (f *Flight) ToTZ() TZOffset { return f.toTZ }
func (f *Flight) RawDuration() int { return f.rawDuration }
func (f *Flight) TZDifference() int { return f.tzDifference }
func (f *Flight) FullDuration() int { return f.fullDuration }

// DepartureInDestinationTime is the departure moment on the destination clock.
func (f *Flight) DepartureInDestinationTime() string {
	return FormatClock(ShiftClock(f.fromMinutes, f.tzDifference))
}

// ArrivalInOriginTime is the arrival moment on the origin clock.
func (f *Flight) ArrivalInOriginTime() string {
	return FormatClock(ShiftClock(f.toMinutes, -f.tzDifference))
}
