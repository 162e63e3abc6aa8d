package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/api"
	"github.com/mfar201/flight-ticket-booking-system-sub001/config"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/admin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/booking"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, adminSvc admin.AdminUseCase) error {
	router := gin.Default()

	flightHandler := api.NewFlightHandler(flightSvc)
	flightHandler.Register(router.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))

	adminGroup := router.Group("/admin")
	flightHandler.RegisterAdmin(adminGroup)
	api.NewAdminHandler(adminSvc).Register(adminGroup)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
