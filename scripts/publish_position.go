//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PositionUpdateEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Публикует тестовое обновление позиции в стрим воркера:
//
//	go run scripts/publish_position.go -lat 41.3851 -lon 2.1734
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	stream := flag.String("stream", "stream:position:updates", "Position updates stream")
	lat := flag.Float64("lat", 41.3851, "Latitude")
	lon := flag.Float64("lon", 2.1734, "Longitude")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	event := PositionUpdateEvent{
		UserID:     uuid.New(),
		Lat:        *lat,
		Lon:        *lon,
		RecordedAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: *stream,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("failed to publish event: %v", err)
	}

	fmt.Printf("published position update %s to %s (user %s)\n", id, *stream, event.UserID)
}
