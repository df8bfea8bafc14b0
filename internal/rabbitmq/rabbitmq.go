package rabbitmq

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Delay between reconnection attempts.
const reconnectDelay = 3 * time.Second

// Connection wraps amqp.Connection and transparently redials until
// closed by the application.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{Connection: conn, log: log}
	go connection.redial(url)
	return connection, nil
}

func (c *Connection) redial(url string) {
	for {
		reason, ok := <-c.Connection.NotifyClose(make(chan *amqp.Error))
		if !ok {
			c.log.Info(context.Background(), "RabbitMQ connection closed.")
			break
		}

		c.log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", *reason))
		for {
			time.Sleep(reconnectDelay)

			conn, err := amqp.Dial(url)
			if err == nil {
				c.Connection = conn
				c.log.Info(context.Background(), "RabbitMQ connection reestablished.")
				break
			}
			c.log.Error(context.Background(), "Could not reconnect to RabbitMQ.", logging.Entry("err", err))
		}
	}
}

// Channel opens a channel that reopens itself when the broker closes it.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{Channel: ch, log: c.log}
	go channel.reopen(c)
	return channel, nil
}

// Channel wraps amqp.Channel with a closed flag so the reopen loop can
// tell an application Close from a broker-side one.
type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

func (ch *Channel) reopen(c *Connection) {
	for {
		reason, ok := <-ch.Channel.NotifyClose(make(chan *amqp.Error))
		if !ok || ch.IsClosed() {
			// Closed by the application, make sure the flag is set.
			ch.Close()
			break
		}

		ch.log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", *reason))
		for {
			time.Sleep(reconnectDelay)

			recreated, err := c.Connection.Channel()
			if err == nil {
				ch.log.Info(context.Background(), "RabbitMQ channel reopened.")
				ch.Channel = recreated
				break
			}

			ch.log.Error(context.Background(), "Could not reopen RabbitMQ channel.", logging.Entry("err", err))
		}
	}
}

func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

// Close marks the channel closed by the application and closes it.
func (ch *Channel) Close() error {
	if ch.IsClosed() {
		return amqp.ErrClosed
	}

	atomic.StoreInt32(&ch.closed, 1)

	return ch.Channel.Close()
}
