package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

type ScheduleEventMessage struct {
	ClinicianID uuid.UUID `json:"clinicianId"`
}

func (l *EventListener) startScheduleQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.ScheduleQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueConfig.ScheduleQueueBind,
		l.cfg.RabbitMq.QueueConfig.ScheduleQueueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processScheduleMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *EventListener) processScheduleMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseEventRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType == EventResourceTypeAll {
		l.logger.Info("schedule.message.invalidate_all", out.LogFields{})
		go l.useCase.InvalidateAllCache(ctx)
		return nil
	}

	if routingKey.ResourceType != EventResourceTypeSchedule {
		return nil
	}

	var msgJson ScheduleEventMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("schedule.message.received", out.LogFields{
		"clinicianId": msgJson.ClinicianID,
		"action":      routingKey.Action,
	})

	// Новое расписание делает устаревшими все сегменты врача
	go l.useCase.InvalidateScheduleCache(ctx, msgJson.ClinicianID)

	return nil
}
