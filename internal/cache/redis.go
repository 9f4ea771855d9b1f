package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avelichko/hoteldesk/config"
	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	roomsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, roomsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		roomsTTL: roomsTTL,
	}
}

func (c *RedisCache) GetRooms(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error) {
	data, err := c.client.Get(ctx, roomsKey(status)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisCache) SetRooms(ctx context.Context, status domain.RoomStatus, rooms []domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roomsKey(status), payload, c.roomsTTL).Err()
}

// InvalidateRooms drops every per-status listing; reception commands call it
// after moving a room between statuses.
func (c *RedisCache) InvalidateRooms(ctx context.Context) error {
	keys := make([]string, 0, 3)
	for _, status := range domain.RoomStatuses() {
		keys = append(keys, roomsKey(status))
	}
	return c.client.Del(ctx, keys...).Err()
}

func roomsKey(status domain.RoomStatus) string {
	return fmt.Sprintf("cache:rooms:%s", status)
}
