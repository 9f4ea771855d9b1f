package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/avelichko/hoteldesk/api"
	"github.com/avelichko/hoteldesk/config"
	"github.com/avelichko/hoteldesk/internal/service/display"
	"github.com/avelichko/hoteldesk/internal/service/reception"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, displaySvc display.DisplayUseCase, receptionSvc reception.ReceptionUseCase) error {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())

	api.NewRoomHandler(displaySvc).Register(router.Group("/display"))
	api.NewReservationHandler(receptionSvc).Register(router.Group("/reception"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
