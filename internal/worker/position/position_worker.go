package position

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	"github.com/coffee-compass/internal/pkg/utils"
	"github.com/coffee-compass/internal/usecase"
	"github.com/coffee-compass/internal/worker"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const workerName = "position-discovery"

// Worker потребляет обновления позиции из Redis Stream и гоняет через них
// поисковый цикл. Фильтр минимального смещения (50 м) отсекает дрожание
// координат ещё до throttle-гейта discovery-слоя; результаты публикуются
// в стрим для мобильного gateway.
type Worker struct {
	*worker.BaseWorker

	streamRepo  repository.StreamRepository
	discoveryUC *usecase.DiscoveryUseCase
	cfg         *config.WorkerConfig

	lastPosition map[uuid.UUID]domain.Coordinate
}

// NewWorker создает position-discovery воркер
func NewWorker(
	streamRepo repository.StreamRepository,
	discoveryUC *usecase.DiscoveryUseCase,
	cfg *config.WorkerConfig,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		BaseWorker:   worker.NewBaseWorker(workerName, cfg.ConsumerGroup, logger),
		streamRepo:   streamRepo,
		discoveryUC:  discoveryUC,
		cfg:          cfg,
		lastPosition: make(map[uuid.UUID]domain.Coordinate),
	}
}

// Start запускает цикл потребления стрима позиций
func (w *Worker) Start(ctx context.Context) error {
	if err := w.streamRepo.CreateConsumerGroup(ctx, w.cfg.PositionStream, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, w.cfg.PositionStream, w.ConsumerGroup(), w.Name())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	w.Logger().Info("Position worker started",
		zap.String("stream", w.cfg.PositionStream),
		zap.String("group", w.ConsumerGroup()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.StopChan():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одно обновление позиции. Сообщение ACK-ается
// в любом исходе: битое или отфильтрованное обновление не должно
// перечитываться вечно.
func (w *Worker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	defer func() {
		if err := w.streamRepo.AckMessage(ctx, w.cfg.PositionStream, w.ConsumerGroup(), msg.ID); err != nil {
			w.Logger().Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}()

	var event domain.PositionUpdateEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		w.Logger().Warn("Failed to decode position update",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	if !w.movedEnough(event) {
		w.Logger().Debug("Position update below minimum move distance",
			zap.String("user_id", event.UserID.String()))
		return
	}

	result, err := w.discoveryUC.Search(ctx, event.Lat, event.Lon)
	if err != nil {
		w.Logger().Error("Discovery search failed",
			zap.String("user_id", event.UserID.String()),
			zap.Error(err))
		return
	}

	discovered := domain.ShopsDiscoveredEvent{
		UserID:    event.UserID,
		Origin:    domain.Coordinate{Lat: event.Lat, Lon: event.Lon},
		Accepted:  result.Accepted,
		ShopCount: len(result.Shops),
		Shops:     result.Shops,
	}

	if err := w.streamRepo.PublishToStream(ctx, w.cfg.DiscoveredStream, discovered); err != nil {
		w.Logger().Error("Failed to publish discovered shops",
			zap.String("user_id", event.UserID.String()),
			zap.Error(err))
		return
	}

	w.Logger().Info("Position update processed",
		zap.String("user_id", event.UserID.String()),
		zap.Bool("accepted", result.Accepted),
		zap.Int("shop_count", len(result.Shops)))
}

// movedEnough применяет фильтр минимального смещения по последней
// обработанной позиции пользователя
func (w *Worker) movedEnough(event domain.PositionUpdateEvent) bool {
	last, ok := w.lastPosition[event.UserID]
	if ok {
		moved := utils.HaversineDistance(last.Lat, last.Lon, event.Lat, event.Lon)
		if moved < w.cfg.MinMoveDistance {
			return false
		}
	}

	w.lastPosition[event.UserID] = domain.Coordinate{Lat: event.Lat, Lon: event.Lon}
	return true
}
