package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airboard/api"
	"github.com/Domenick1991/airboard/config"
	"github.com/Domenick1991/airboard/internal/logger"
	"github.com/Domenick1991/airboard/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// Run serves the board API and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(flightSvc),
	}

	errCh := make(chan error, 1)
	go func() {
		l := logger.GetLogger()
		l.Info().Str("addr", srv.Addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(flightSvc flights.FlightUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	api.NewBoardHandler(flightSvc).Register(router.Group("/board"))
	return router
}
