package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model/event"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	errs   []error
	calls  int
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if len(w.errs) > 0 {
		err := w.errs[0]
		w.errs = w.errs[1:]
		if err != nil {
			return err
		}
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Brokers = []string{"localhost:9092"}
	cfg.Topic = "storefront.orders"
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func testOrder() *model.Order {
	order := &model.Order{
		OrderNumber: "UZ250101ABCD",
		UserID:      uuid.New(),
		TotalPrice:  decimal.RequireFromString("77.2"),
		Items: []model.OrderItem{
			{ProductID: uuid.New(), Quantity: 3, Price: decimal.NewFromInt(20)},
		},
	}
	order.ID = uuid.New()
	return order
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{name: "ok", modify: func(c *Config) {}},
		{name: "no brokers", modify: func(c *Config) { c.Brokers = nil }, wantErr: true},
		{name: "no topic", modify: func(c *Config) { c.Topic = "" }, wantErr: true},
		{name: "negative retry", modify: func(c *Config) { c.RetryAttempts = -1 }, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidateParameter)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPublish(t *testing.T) {
	logger := zerolog.Nop()
	order := testOrder()

	cases := []struct {
		name      string
		errs      []error
		wantErr   bool
		wantCalls int
	}{
		{name: "success first try", wantCalls: 1},
		{name: "retry temporary error", errs: []error{kafka.LeaderNotAvailable, nil}, wantCalls: 2},
		{name: "fatal error no retry", errs: []error{kafka.TopicAuthorizationFailed}, wantErr: true, wantCalls: 1},
		{
			name:      "give up after retries",
			errs:      []error{kafka.RequestTimedOut, kafka.RequestTimedOut, kafka.RequestTimedOut, kafka.RequestTimedOut},
			wantErr:   true,
			wantCalls: 4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writer := &fakeWriter{errs: tc.errs}
			p := newKafkaEventPublisher(writer, testConfig(), &logger)

			err := p.Publish(context.Background(), event.NewOrderPlacedEvent(order))
			require.Equal(t, tc.wantCalls, writer.calls)
			if tc.wantErr {
				var kafkaErr *KafkaError
				require.ErrorAs(t, err, &kafkaErr)
				require.Equal(t, "storefront.orders", kafkaErr.Topic)
				return
			}
			require.NoError(t, err)
			require.Len(t, writer.msgs, 1)

			msg := writer.msgs[0]
			require.Equal(t, order.ID.String(), string(msg.Key))
			require.Equal(t, "event_type", msg.Headers[0].Key)
			require.Equal(t, string(event.OrderPlacedEventName), string(msg.Headers[0].Value))

			var body map[string]any
			require.NoError(t, json.Unmarshal(msg.Value, &body))
			require.Equal(t, "UZ250101ABCD", body["orderNumber"])
		})
	}
}

func TestPublish_Closed(t *testing.T) {
	logger := zerolog.Nop()
	writer := &fakeWriter{}
	p := newKafkaEventPublisher(writer, testConfig(), &logger)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	require.True(t, writer.closed)

	err := p.Publish(context.Background(), event.NewOrderPlacedEvent(testOrder()))
	require.ErrorIs(t, err, ErrProducerClosed)
}

func TestPublish_ContextCanceled(t *testing.T) {
	logger := zerolog.Nop()
	writer := &fakeWriter{}
	p := newKafkaEventPublisher(writer, testConfig(), &logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Publish(ctx, event.NewOrderPlacedEvent(testOrder()))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, writer.calls)
}

func TestIsTemporaryError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "leader not available", err: kafka.LeaderNotAvailable, want: true},
		{name: "wrapped timeout", err: NewKafkaError("Publish", "t", context.DeadlineExceeded), want: true},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "authorization", err: kafka.TopicAuthorizationFailed, want: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "unknown", err: errors.New("boom"), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsTemporaryError(tc.err))
		})
	}
}
