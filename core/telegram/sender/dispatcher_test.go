package sender

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueueRunsJob(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1})

	var mu sync.Mutex
	ran := false
	err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error {
		mu.Lock()
		ran = true
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	d.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, ran)
	assert.Zero(t, d.ErrorCount())
}

func TestEnqueueAfterCloseReturnsClosed(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1})
	d.Close()

	err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error { return nil })
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestEnqueueFullQueue(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 1, Workers: 1})
	defer d.Close()

	block := make(chan struct{})
	// Occupy the single worker, then fill the queue.
	_ = d.Enqueue(context.Background(), "a", "", func() error { <-block; return nil })

	var err error
	deadline := time.After(time.Second)
	for {
		err = d.Enqueue(context.Background(), "b", "", func() error { return nil })
		if errors.Is(err, ErrQueueFull) {
			break
		}
		select {
		case <-deadline:
			t.Fatal("queue never filled")
		default:
		}
	}
	close(block)
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestNonRetryableErrorCounted(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, MaxRetries: 2, RetryBackoff: time.Millisecond})

	calls := 0
	var mu sync.Mutex
	require.NoError(t, d.Enqueue(context.Background(), "send.text", "", func() error {
		mu.Lock()
		calls++
		mu.Unlock()
		return errors.New("bad request")
	}))
	d.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "non-retryable errors are not retried")
	assert.EqualValues(t, 1, d.ErrorCount())
}

func TestSanitizeErrorMessage(t *testing.T) {
	err := errors.New("telegram: Post https://api.telegram.org/bot123456:AAbbCCdd-ee/sendMessage failed")
	got := sanitizeErrorMessage(err)
	assert.NotContains(t, got, "123456:AAbbCCdd-ee")
	assert.Contains(t, got, "bot<redacted>")
}
