package logger

import (
	"context"
	"encoding/binary"
	"errors"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

var ErrWriterClosed = errors.New("kafka log writer is closed")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaLogWriter 把zerolog輸出的每一行log送到kafka topic
// 實作 io.Writer, 由 zerolog.MultiLevelWriter 與stdout並用
type KafkaLogWriter struct {
	w      messageWriter
	logId  atomic.Uint64
	closed atomic.Bool
}

func NewKafkaLogWriter(brokers []string, topic string) *KafkaLogWriter {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		BatchSize:    100,
		// 設置較短的超時時間以快速發現問題
		WriteTimeout: 5 * time.Second,
		MaxAttempts:  3,
		// log 不能卡住請求
		Async: true,
	}
	return newKafkaLogWriter(w)
}

func newKafkaLogWriter(w messageWriter) *KafkaLogWriter {
	return &KafkaLogWriter{w: w}
}

func (kw *KafkaLogWriter) Write(p []byte) (n int, err error) {
	if kw.closed.Load() {
		return 0, ErrWriterClosed
	}

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, kw.logId.Add(1))

	// zerolog 會重用buffer
	value := make([]byte, len(p))
	copy(value, p)

	if err := kw.w.WriteMessages(context.Background(), kafka.Message{Key: key, Value: value}); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (kw *KafkaLogWriter) Close() error {
	if !kw.closed.CompareAndSwap(false, true) {
		return nil
	}
	return kw.w.Close()
}
