package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airboard/internal/domain"
	"github.com/Domenick1991/airboard/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]*domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Flight), args.Error(1)
}

func parisTokyo(t *testing.T) []*domain.Flight {
	f, err := domain.NewFlight(domain.FlightRecord{
		FromAirport: domain.Airport{City: "Paris", Name: "Charles de Gaulle", Code: "CDG", TimeZone: "+0100"},
		FromTime:    "23:00",
		ToAirport:   domain.Airport{City: "Tokyo", Name: "Narita", Code: "NRT", TimeZone: "+0900"},
		ToTime:      "07:00",
	})
	require.NoError(t, err)
	return []*domain.Flight{f}
}

func newContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestBoardHandler_board(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewBoardHandler(mockService)

	c, w := newContext("GET", "/board")
	mockService.On("List", c.Request.Context()).Return(parisTokyo(t), nil)

	handler.board(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Board, 1)
	assert.Equal(t, "07:00", got.Board[0].DepartureDestinationTime)
	assert.Equal(t, "23:00", got.Board[0].ArrivalOriginTime)
	require.NotNil(t, got.Summary)
	assert.Equal(t, "16h 0m", got.Summary.AvgDurationHuman)

	mockService.AssertExpectations(t)
}

func TestBoardHandler_board_Error(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewBoardHandler(mockService)

	c, w := newContext("GET", "/board")
	mockService.On("List", c.Request.Context()).Return(nil, errors.New("load flights: boom"))

	handler.board(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "load flights: boom")
}

func TestBoardHandler_diagnostics(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewBoardHandler(mockService)

	c, w := newContext("GET", "/board/diagnostics")
	mockService.On("List", c.Request.Context()).Return(parisTokyo(t), nil)

	handler.diagnostics(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []report.Diagnostic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 480, got[0].TZDifference)
}

func TestBoardHandler_summary_Empty(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewBoardHandler(mockService)

	c, w := newContext("GET", "/board/summary")
	mockService.On("List", c.Request.Context()).Return([]*domain.Flight{}, nil)

	handler.summary(c)

	// gin only flushes the status on the first write
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
}
