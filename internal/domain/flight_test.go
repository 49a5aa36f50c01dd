package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	paris = Airport{City: "Paris", Name: "Charles de Gaulle", Code: "CDG", TimeZone: "+0100"}
	tokyo = Airport{City: "Tokyo", Name: "Narita", Code: "NRT", TimeZone: "+0900"}
	ny    = Airport{City: "New York", Name: "John F. Kennedy", Code: "JFK", TimeZone: "-0500"}
)

func TestNewFlight_ParisTokyo(t *testing.T) {
	f, err := NewFlight(FlightRecord{FromAirport: paris, FromTime: "23:00", ToAirport: tokyo, ToTime: "07:00"})
	require.NoError(t, err)

	// 1380 - 420 = 960 > 0, so 1440 - 960
	assert.Equal(t, 480, f.RawDuration())
	// both east: 540 - 60
	assert.Equal(t, 480, f.TZDifference())
	// no western zone, override not taken: |480 + 480|
	assert.Equal(t, 960, f.FullDuration())

	assert.Equal(t, "07:00", f.DepartureInDestinationTime())
	assert.Equal(t, "23:00", f.ArrivalInOriginTime())
	assert.Equal(t, "23:00", f.FromTime())
	assert.Equal(t, "07:00", f.ToTime())
	assert.Equal(t, TZOffset(60), f.FromTZ())
	assert.Equal(t, TZOffset(540), f.ToTZ())
}

func TestNewFlight_WestOverride(t *testing.T) {
	f, err := NewFlight(FlightRecord{FromAirport: ny, FromTime: "09:00", ToAirport: paris, ToTime: "10:00"})
	require.NoError(t, err)

	assert.Equal(t, 60, f.RawDuration())
	// 300 + 60, arrival east
	assert.Equal(t, 360, f.TZDifference())
	// first stage would be 420; override gives 60 + (1440 - 360)
	assert.Equal(t, 1140, f.FullDuration())
	assert.Equal(t, "15:00", f.DepartureInDestinationTime())
	assert.Equal(t, "04:00", f.ArrivalInOriginTime())
}

func TestNewFlight_Malformed(t *testing.T) {
	_, err := NewFlight(FlightRecord{FromAirport: paris, FromTime: "2300", ToAirport: tokyo, ToTime: "07:00"})
	assert.ErrorIs(t, err, ErrInvalidClockTime)

	_, err = NewFlight(FlightRecord{FromAirport: paris, FromTime: "23:00", ToAirport: tokyo, ToTime: "7"})
	assert.ErrorIs(t, err, ErrInvalidClockTime)

	broken := tokyo
	broken.TimeZone = "+9"
	_, err = NewFlight(FlightRecord{FromAirport: paris, FromTime: "23:00", ToAirport: broken, ToTime: "07:00"})
	assert.ErrorIs(t, err, ErrInvalidTimeZone)
	assert.Contains(t, err.Error(), "NRT")
}
