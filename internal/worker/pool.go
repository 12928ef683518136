package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueInvoiceEmail = "jobs:invoice_email"

	JobInvoiceEmail = "invoice_email"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Handler processes one job payload. A returned error sends the job to the DLQ.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb redis.Cmdable
}

func NewDispatcher(rdb redis.Cmdable) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueInvoiceEmail schedules delivery of a generated invoice document.
func (d *Dispatcher) EnqueueInvoiceEmail(ctx context.Context, payload InvoiceEmailPayload) error {
	if payload.ToEmail == "" {
		return errors.New("worker: invoice email without recipient")
	}
	return d.enqueue(ctx, QueueInvoiceEmail, JobInvoiceEmail, payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("worker: marshal payload: %w", err)
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return fmt.Errorf("worker: marshal job: %w", err)
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool routes dequeued jobs to their handler by Job.Type.
type Pool struct {
	rdb      redis.Cmdable
	handlers map[string]Handler
	backoff  time.Duration // pause after a failed BRPOP
}

func NewPool(rdb redis.Cmdable, handlers map[string]Handler) *Pool {
	return &Pool{rdb: rdb, handlers: handlers, backoff: 2 * time.Second}
}

// Start launches numWorkers goroutines consuming the invoice e-mail queue.
// Each goroutine blocks on BRPOP and exits when ctx is cancelled.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop: waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, QueueInvoiceEmail).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue // timeout or context cancelled
				}
				log.Warn().Err(err).Int("worker", id).Msg("queue unavailable, backing off")
				select {
				case <-ctx.Done():
				case <-time.After(p.backoff):
				}
				continue
			}
			if len(result) < 2 {
				continue
			}
			p.handle(ctx, result[0], result[1])
		}
	}
}

// handle runs a single raw job. Jobs are attempted once; failures go to the DLQ.
func (p *Pool) handle(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		SendToDLQ(ctx, p.rdb, queue, "unknown", json.RawMessage(fmt.Sprintf("%q", raw)), err.Error())
		return
	}

	h, ok := p.handlers[job.Type]
	if !ok {
		log.Error().Str("type", job.Type).Str("queue", queue).Msg("no handler for job type")
		SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, "no handler")
		return
	}

	log.Info().Str("type", job.Type).Str("queue", queue).Msg("processing job")
	if err := h.Process(ctx, job.Payload); err != nil {
		SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, err.Error())
	}
}
