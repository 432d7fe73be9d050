package rabbitmq_producer

import (
	"context"
	"fmt"
	"sync"

	"github.com/Abdalkaderdev/Realhouse-sub003/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublisherConfig конфигурация для производителя
type PublisherConfig struct {
	ExchangeName       string     // пустая строка: default exchange
	ExchangeType       string     // direct, fanout, topic, headers
	DurableExchange    bool
	AutoDeleteExchange bool
	ExchangeArgs       amqp.Table

	// Если false, обменник должен уже существовать
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

func (cfg PublisherConfig) validate() error {
	if !cfg.DeclareExchangeIfMissing {
		return nil
	}
	if cfg.ExchangeName == "" && cfg.ExchangeType != "" {
		return fmt.Errorf("producer: exchange name is required when ExchangeType is set and DeclareExchangeIfMissing is true")
	}
	if cfg.ExchangeType == "" && cfg.ExchangeName != "" {
		return fmt.Errorf("producer: exchange type is required when ExchangeName is set and DeclareExchangeIfMissing is true")
	}
	return nil
}

// Publisher публикует сообщения в один обменник через собственный канал
type Publisher struct {
	config     PublisherConfig
	manager    *rabbitmq_common.ConnectionManager
	connection *amqp.Connection
	channel    *amqp.Channel
	mu         sync.Mutex

	Logger rabbitmq_common.Logger
}

// NewPublisher открывает канал и, если нужно, объявляет обменник
func NewPublisher(cfg PublisherConfig, connManager *rabbitmq_common.ConnectionManager) (*Publisher, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := &Publisher{config: cfg, manager: connManager, Logger: logger}
	if err := p.openChannel(); err != nil {
		return nil, err
	}
	p.Logger.Debug("Producer: channel opened", "exchange", cfg.ExchangeName)
	return p, nil
}

func (p *Publisher) openChannel() error {
	conn, ch, err := p.manager.GetChannel()
	if err != nil {
		return fmt.Errorf("producer: failed to get channel from manager: %w", err)
	}

	if p.config.DeclareExchangeIfMissing && p.config.ExchangeName != "" {
		p.Logger.Debug("Declaring exchange", "name", p.config.ExchangeName, "type", p.config.ExchangeType)
		err = ch.ExchangeDeclare(
			p.config.ExchangeName,
			p.config.ExchangeType,
			p.config.DurableExchange,
			p.config.AutoDeleteExchange,
			false, // internal
			false, // no-wait
			p.config.ExchangeArgs,
		)
		if err != nil {
			_ = ch.Close()
			return fmt.Errorf("producer: failed to declare exchange '%s': %w", p.config.ExchangeName, err)
		}
	}

	p.connection = conn
	p.channel = ch
	return nil
}

// Publish публикует сообщение. Закрытый канал переоткрывается один раз.
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() || p.connection == nil || p.connection.IsClosed() {
		p.Logger.Warn("Producer: channel is closed, reopening")
		if err := p.openChannel(); err != nil {
			return fmt.Errorf("producer: not connected: %w", err)
		}
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
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

// Close закрывает канал; соединение принадлежит ConnectionManager
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.Logger.Error(err, "Error closing channel")
			firstErr = err
		}
		p.channel = nil
	}
	p.Logger.Info("Producer closed")
	return firstErr
}
