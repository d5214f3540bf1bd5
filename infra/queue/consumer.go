package queue

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/interfaces"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const defaultRetryBackoff = 2 * time.Second

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	Reader       messageReader
	Handler      interfaces.ConsumerHandler
	ServiceName  string
	RetryBackoff time.Duration
}

func NewKafkaConsumer(cfg KafkaConfig, serviceName string, handler interfaces.ConsumerHandler) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{cfg.Broker},
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		Dialer:   cfg.dialer(),
		MinBytes: 10e3, //10KB
		MaxBytes: 10e6, //10MB
	})

	return &KafkaConsumer{
		Reader:       reader,
		Handler:      handler,
		ServiceName:  serviceName,
		RetryBackoff: defaultRetryBackoff,
	}
}

// Listen reads until ctx is cancelled. Handler failures are logged and the
// message is committed anyway.
func (kc *KafkaConsumer) Listen(ctx context.Context) error {
	defer kc.Reader.Close()

	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			log.Error().Err(err).Str("service", kc.ServiceName).Msg("error reading message")
			if !kc.wait(ctx) {
				return nil
			}
			continue
		}

		log.Info().
			Str("service", kc.ServiceName).
			Str("key", string(msg.Key)).
			Int64("offset", msg.Offset).
			Msg("received message")

		if err := kc.Handler.HandleMessage(ctx, msg.Key, msg.Value); err != nil {
			log.Error().Err(err).Str("key", string(msg.Key)).Msg("error processing message")
		}
	}
}

// wait sleeps for RetryBackoff. It reports false when ctx ends first.
func (kc *KafkaConsumer) wait(ctx context.Context) bool {
	backoff := kc.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	timer := time.NewTimer(backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
