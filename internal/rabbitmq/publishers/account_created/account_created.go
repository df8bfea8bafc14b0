package accountcreated

import (
	"context"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	"github.com/Shouganaii/tdd-clean-go-api/internal/rabbitmq"
	"github.com/Shouganaii/tdd-clean-go-api/internal/rabbitmq/schema"
	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishAccountCreated(ctx context.Context, a account.Account) error {
	event := schema.AccountCreated{
		ID:        int64(a.ID),
		Name:      a.Name,
		Email:     string(a.Email),
		CreatedAt: a.CreatedAt,
	}
	body, err := event.Marshal()
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("accountID", a.ID),
	)
	return nil
}
