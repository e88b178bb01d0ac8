package rabbitmq

import (
	"context"

	"github.com/streadway/amqp"

	"github.com/pricexhq/pricex/internal/models"
)

// ActivityPublisher публикует события активности в exchange "activities".
// Реализует контракт EventPublisher сервисов оценки и генерации контента.
type ActivityPublisher struct {
	ch *amqp.Channel
}

// NewActivityPublisher создает публикатора поверх открытого канала.
func NewActivityPublisher(ch *amqp.Channel) *ActivityPublisher {
	return &ActivityPublisher{ch: ch}
}

// Publish отправляет событие активности.
func (p *ActivityPublisher) Publish(_ context.Context, event models.ActivityEvent) error {
	return PublishMessage(p.ch, ActivityExchange, ActivityRoutingKey, event)
}
