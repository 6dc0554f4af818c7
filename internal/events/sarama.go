package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/foodadmin/internal/models"
	log "github.com/sirupsen/logrus"
)

var errProducerClosed = errors.New("sarama producer is not initialized")

type SaramaPublisher struct {
	producer sarama.SyncProducer
}

func newSaramaConfig(cfg models.KafkaConfig) *sarama.Config {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required by SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	if cfg.SessionTimeoutMs > 0 {
		saramaConfig.Consumer.Group.Session.Timeout = time.Duration(cfg.SessionTimeoutMs) * time.Millisecond
	} else {
		saramaConfig.Consumer.Group.Session.Timeout = 45 * time.Second
	}
	return saramaConfig
}

func NewSaramaPublisher(cfg models.KafkaConfig) (*SaramaPublisher, error) {
	brokerList := strings.Split(cfg.BrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.WithField("brokers", brokerList).Info("sarama producer created")
	return NewSaramaPublisherFromProducer(producer), nil
}

func NewSaramaPublisherFromProducer(producer sarama.SyncProducer) *SaramaPublisher {
	return &SaramaPublisher{producer: producer}
}

func (s *SaramaPublisher) Publish(_ context.Context, topic, key string, payload []byte) error {
	if s.producer == nil {
		return errProducerClosed
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(payload),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		log.WithError(err).WithField("topic", topic).Error("failed to send message")
		return err
	}
	log.WithFields(log.Fields{"topic": topic, "partition": partition, "offset": offset}).Debug("message sent")
	return nil
}

func (s *SaramaPublisher) Close() error {
	if s.producer != nil {
		err := s.producer.Close()
		s.producer = nil
		return err
	}
	return nil
}

// NewPublisher picks Kafka when enabled and the log publisher otherwise.
func NewPublisher(cfg models.KafkaConfig) (Publisher, error) {
	if !cfg.Enabled {
		return LogPublisher{}, nil
	}
	return NewSaramaPublisher(cfg)
}
