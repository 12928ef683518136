package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// downQueue answers every BRPOP with a connection error.
type downQueue struct {
	redis.Cmdable
	pops atomic.Int32
}

func (q *downQueue) BRPop(context.Context, time.Duration, ...string) *redis.StringSliceCmd {
	q.pops.Add(1)
	return redis.NewStringSliceResult(nil, errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"))
}

func TestPool_BacksOffWhileRedisIsDown(t *testing.T) {
	q := &downQueue{}
	p := NewPool(q, nil)
	p.backoff = 50 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 220*time.Millisecond)
	defer cancel()
	done := make(chan struct{})
	go func() {
		p.run(ctx, 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
	assert.LessOrEqual(t, q.pops.Load(), int32(6))
	assert.GreaterOrEqual(t, q.pops.Load(), int32(2))
}
