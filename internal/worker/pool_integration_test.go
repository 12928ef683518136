//go:build integration

package worker

// Run with: go test -tags integration ./internal/worker/... -v

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

type funcHandler func(ctx context.Context, payload json.RawMessage) error

func (f funcHandler) Process(ctx context.Context, payload json.RawMessage) error { return f(ctx, payload) }

func TestPool_DeliversEnqueuedInvoiceEmail(t *testing.T) {
	rdb := startRedis(t)
	ctx := context.Background()
	sender := &stubSender{}

	require.NoError(t, NewDispatcher(rdb).EnqueueInvoiceEmail(ctx, InvoiceEmailPayload{
		InvoiceID: 8, ToEmail: "cliente@example.com", PDFPath: "/tmp/f.pdf",
	}))

	raw, err := rdb.RPop(ctx, QueueInvoiceEmail).Result()
	require.NoError(t, err)

	pool := NewPool(rdb, map[string]Handler{JobInvoiceEmail: NewInvoiceEmailWorker(sender)})
	pool.handle(ctx, QueueInvoiceEmail, raw)

	require.Len(t, sender.sent, 1)
	n, err := DLQLength(ctx, rdb, QueueInvoiceEmail)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPool_FailedJobGoesToDLQ(t *testing.T) {
	rdb := startRedis(t)
	ctx := context.Background()

	pool := NewPool(rdb, map[string]Handler{
		JobInvoiceEmail: funcHandler(func(context.Context, json.RawMessage) error {
			return errors.New("smtp down")
		}),
	})
	job, _ := json.Marshal(Job{Type: JobInvoiceEmail, Payload: json.RawMessage(`{"invoice_id":3}`)})
	pool.handle(ctx, QueueInvoiceEmail, string(job))
	pool.handle(ctx, QueueInvoiceEmail, "not json")

	n, err := DLQLength(ctx, rdb, QueueInvoiceEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	entries, err := PeekDLQ(ctx, rdb, QueueInvoiceEmail, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "unknown", entries[0].JobType)
	assert.Equal(t, "smtp down", entries[1].Reason)
}
