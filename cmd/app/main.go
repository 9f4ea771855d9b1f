package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avelichko/hoteldesk/config"
	"github.com/avelichko/hoteldesk/internal/bootstrap"
	"github.com/avelichko/hoteldesk/internal/cache"
	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/avelichko/hoteldesk/internal/kafka"
	"github.com/avelichko/hoteldesk/internal/repository"
	"github.com/avelichko/hoteldesk/internal/service/display"
	"github.com/avelichko/hoteldesk/internal/service/reception"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Display.RoomsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	roomRepo := repository.NewRoomRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	displayService := display.NewDisplayService(roomRepo, redisCache)
	receptionService := reception.NewReceptionService(
		reservationRepo,
		roomRepo,
		domain.NewCheckInService(),
		domain.NewNumberGenerator(),
		redisCache,
		producer,
		cfg.Kafka.ReservationEventsTopic,
		reception.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, displayService, receptionService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
