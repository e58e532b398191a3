package logger

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageWriter struct {
	msgs   []kafka.Message
	err    error
	closed int
}

func (f *fakeMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeMessageWriter) Close() error {
	f.closed++
	return nil
}

func TestKafkaLogWriter_Write(t *testing.T) {
	fw := &fakeMessageWriter{}
	kw := newKafkaLogWriter(fw)

	buf := []byte(`{"level":"info"}`)
	n, err := kw.Write(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	// 呼叫端改寫buffer不影響已送出的訊息
	buf[2] = 'X'
	_, err = kw.Write([]byte("second"))
	require.NoError(t, err)

	require.Len(t, fw.msgs, 2)
	assert.Equal(t, `{"level":"info"}`, string(fw.msgs[0].Value))
	assert.Equal(t, uint64(1), binary.BigEndian.Uint64(fw.msgs[0].Key))
	assert.Equal(t, uint64(2), binary.BigEndian.Uint64(fw.msgs[1].Key))
}

func TestKafkaLogWriter_WriteError(t *testing.T) {
	fw := &fakeMessageWriter{err: errors.New("broker down")}
	kw := newKafkaLogWriter(fw)

	n, err := kw.Write([]byte("x"))
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestKafkaLogWriter_Close(t *testing.T) {
	fw := &fakeMessageWriter{}
	kw := newKafkaLogWriter(fw)

	require.NoError(t, kw.Close())
	require.NoError(t, kw.Close())
	assert.Equal(t, 1, fw.closed)

	_, err := kw.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrWriterClosed)
}

func TestNew_WithExtraWriter(t *testing.T) {
	var extra bytes.Buffer
	l := New("production", "warn", &extra)

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	assert.NotContains(t, extra.String(), "dropped")
	assert.Contains(t, extra.String(), `"message":"kept"`)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}
