package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublisherConfig - конфигурация издателя.
type PublisherConfig struct {
	ExchangeName       string     // имя обменника (пустая строка - default exchange)
	ExchangeType       string     // direct, fanout, topic, headers
	DurableExchange    bool       // переживает ли обменник рестарт брокера
	AutoDeleteExchange bool       // автоудаление обменника
	ExchangeArgs       amqp.Table // дополнительные аргументы обменника

	// Если false, издатель полагается на то, что обменник уже существует.
	DeclareExchangeIfMissing bool

	Logger Logger
}

// Publisher публикует сообщения в один обменник через канал
// из общего соединения.
type Publisher struct {
	config     PublisherConfig
	connection *amqp.Connection
	channel    *amqp.Channel

	logger Logger
}

func NewPublisher(cfg PublisherConfig, connManager *ConnectionManager) (*Publisher, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = NewNoopLogger()
	}

	if cfg.DeclareExchangeIfMissing && (cfg.ExchangeName == "" || cfg.ExchangeType == "") {
		return nil, fmt.Errorf("publisher: exchange name and type are required to declare an exchange")
	}

	conn, ch, err := connManager.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("publisher: failed to get channel from manager: %w", err)
	}

	p := &Publisher{
		config:     cfg,
		connection: conn,
		channel:    ch,
		logger:     logger,
	}

	if cfg.DeclareExchangeIfMissing {
		logger.Debug("Declaring exchange", "name", cfg.ExchangeName, "type", cfg.ExchangeType)
		err = ch.ExchangeDeclare(
			cfg.ExchangeName,
			cfg.ExchangeType,
			cfg.DurableExchange,
			cfg.AutoDeleteExchange,
			false, // internal
			false, // no-wait
			cfg.ExchangeArgs,
		)
		if err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("publisher: failed to declare exchange '%s': %w", cfg.ExchangeName, err)
		}
	}

	logger.Debug("Publisher: channel opened")
	return p, nil
}

// Publish публикует сообщение с указанным routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if p.channel == nil || p.connection == nil || p.connection.IsClosed() {
		return fmt.Errorf("publisher: not connected or channel/connection is closed")
	}

	err := p.channel.PublishWithContext(
		ctx,
		p.config.ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("publisher: failed to publish message: %w", err)
	}
	return nil
}

// Close закрывает канал издателя. Общее соединение остается
// под управлением ConnectionManager.
func (p *Publisher) Close() error {
	if p.channel == nil {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		p.logger.Error(err, "Publisher: error closing channel")
		return err
	}
	p.channel = nil
	return nil
}
