package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

type AppointmentEventMessage struct {
	ClinicianID uuid.UUID       `json:"clinicianId"`
	Date        json_types.Date `json:"date"`
}

func (l *EventListener) startAppointmentQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.AppointmentQueueName,
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
		l.cfg.RabbitMq.QueueConfig.AppointmentQueueBind,
		l.cfg.RabbitMq.QueueConfig.AppointmentQueueExchange,
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
				if err := l.processAppointmentMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *EventListener) processAppointmentMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseEventRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != EventResourceTypeAppointment {
		return nil
	}

	var msgJson AppointmentEventMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("appointment.message.received", out.LogFields{
		"clinicianId": msgJson.ClinicianID,
		"date":        msgJson.Date,
		"action":      routingKey.Action,
	})

	// Создание и отмена записи обрабатываются одинаково: сегменты этого дня
	// устарели и будут пересчитаны при следующем запросе
	if routingKey.Action == EventActionStore || routingKey.Action == EventActionInvalidate {
		go l.useCase.InvalidateSegmentsCache(ctx, msgJson.ClinicianID, msgJson.Date)

		l.logger.Info("appointment.message.segments_invalidated", out.LogFields{
			"clinicianId": msgJson.ClinicianID,
			"date":        msgJson.Date,
		})
	}

	return nil
}
