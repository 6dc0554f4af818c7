package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaramaPublisherSendsKeyedMessage(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev Event
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Type != TypeOrderStatusChanged || ev.Key != "o1" {
			return errors.New("unexpected event envelope")
		}
		return nil
	})
	pub := NewSaramaPublisherFromProducer(producer)

	err := Emit(context.Background(), pub, "order_events", TypeOrderStatusChanged, "o1",
		OrderStatusChange{OrderID: "o1", From: models.OrderStatusProcessing, To: models.OrderStatusDelivered})

	require.NoError(t, err)
	require.NoError(t, pub.Close())
	assert.ErrorIs(t, pub.Publish(context.Background(), "t", "", nil), errProducerClosed)
}

func TestSaramaPublisherPropagatesFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	pub := NewSaramaPublisherFromProducer(producer)
	defer pub.Close()

	err := pub.Publish(context.Background(), "report_events", "r1", []byte("{}"))

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestNewPublisherDisabledUsesLog(t *testing.T) {
	pub, err := NewPublisher(models.KafkaConfig{Enabled: false})

	require.NoError(t, err)
	assert.IsType(t, LogPublisher{}, pub)
	assert.NoError(t, pub.Publish(context.Background(), "order_events", "o1", []byte(`{"ok":true}`)))
}

func TestSaramaConfigSessionTimeout(t *testing.T) {
	cfg := newSaramaConfig(models.KafkaConfig{SessionTimeoutMs: 1500})
	assert.Equal(t, int64(1500), cfg.Consumer.Group.Session.Timeout.Milliseconds())
	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
}
