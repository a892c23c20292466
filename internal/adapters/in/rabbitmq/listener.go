package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sgc-clinic/availability-service/internal/config"
	"github.com/sgc-clinic/availability-service/internal/core/ports/in"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

// EventListener слушает события бэкенда клиники и инвалидирует кэш,
// чтобы сегменты пересчитались по свежим данным при следующем запросе
type EventListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.AvailabilityUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	EventAction       string
	EventResourceType string
)

type EventRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType EventResourceType
	Action       EventAction
}

const (
	EventResourceTypeAll         EventResourceType = "_all_"
	EventResourceTypeAppointment EventResourceType = "appointment"
	EventResourceTypeSchedule    EventResourceType = "schedule"
)

const (
	EventActionStore      EventAction = "store"
	EventActionInvalidate EventAction = "invalidate"
)

func NewEventListener(useCase in.AvailabilityUseCase, cfg *config.Config, logger out.LoggerPort) (*EventListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMq.AmqpUri,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &EventListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *EventListener) Start(ctx context.Context) error {
	var err error
	err = l.startAppointmentQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("appointment.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.AppointmentQueueName,
	})
	err = l.startScheduleQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("schedule.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.ScheduleQueueName,
	})

	return nil
}

func (l *EventListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Пример routingKey:
// clinic.availability-svc.appointment.store
// clinic.availability-svc.appointment.invalidate
// clinic.availability-svc.schedule.invalidate
func (l *EventListener) parseEventRoutingKey(ctx context.Context, msg amqp.Delivery) (EventRoutingKey, error) {
	routingKey := msg.RoutingKey
	parts := strings.Split(routingKey, ".")

	if len(parts) < 4 {
		return EventRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return EventRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: EventResourceType(parts[2]),
		Action:       EventAction(parts[3]),
	}, nil
}
