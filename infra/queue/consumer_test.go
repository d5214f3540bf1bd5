package queue

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	reads  int
	closed bool
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if len(r.msgs) > 0 {
		msg := r.msgs[0]
		r.msgs = r.msgs[1:]
		return msg, nil
	}
	if r.err != nil {
		return kafka.Message{}, r.err
	}
	return kafka.Message{}, io.EOF
}

func (r *scriptedReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *scriptedReader) readCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

type recordingHandler struct {
	keys []string
	err  error
}

func (h *recordingHandler) HandleMessage(ctx context.Context, key, value []byte) error {
	h.keys = append(h.keys, string(key))
	return h.err
}

func TestListenDeliversMessagesUntilEOF(t *testing.T) {
	reader := &scriptedReader{msgs: []kafka.Message{
		{Key: []byte("application.submitted")},
		{Key: []byte("application.status_changed")},
	}}
	handler := &recordingHandler{err: errors.New("smtp down")}
	kc := &KafkaConsumer{Reader: reader, Handler: handler, ServiceName: "test"}

	require.NoError(t, kc.Listen(context.Background()))
	assert.Equal(t, []string{"application.submitted", "application.status_changed"}, handler.keys)
	assert.True(t, reader.closed)
}

func TestListenBacksOffOnReadErrors(t *testing.T) {
	reader := &scriptedReader{err: errors.New("broker unreachable")}
	kc := &KafkaConsumer{
		Reader:       reader,
		Handler:      &recordingHandler{},
		ServiceName:  "test",
		RetryBackoff: 50 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	require.NoError(t, kc.Listen(ctx))
	assert.GreaterOrEqual(t, reader.readCount(), 1)
	assert.LessOrEqual(t, reader.readCount(), 4)
	assert.True(t, reader.closed)
}

func TestWaitStopsOnCancel(t *testing.T) {
	kc := &KafkaConsumer{RetryBackoff: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, kc.wait(ctx))
}
