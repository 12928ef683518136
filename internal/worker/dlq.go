package worker

// dlq.go: Dead Letter Queue
// Invoice e-mails whose delivery failed are parked in dlq:{queue} so an
// operator can inspect them; nothing is retried automatically.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry wraps a failed job with the reason it failed.
type DLQEntry struct {
	Queue    string          `json:"queue"`
	JobType  string          `json:"job_type"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt time.Time       `json:"failed_at"`
}

// SendToDLQ pushes a failed job to the dead letter queue of its source queue.
func SendToDLQ(ctx context.Context, rdb redis.Cmdable, queue, jobType string, payload json.RawMessage, reason string) {
	entry := DLQEntry{
		Queue:    queue,
		JobType:  jobType,
		Payload:  payload,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: failed to marshal entry")
		return
	}

	key := DLQPrefix + queue
	if err := rdb.LPush(ctx, key, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", key).Msg("dlq: failed to push")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Str("reason", reason).
		Msg("dlq: job parked")
}

// DLQLength returns the number of parked jobs for queue.
func DLQLength(ctx context.Context, rdb redis.Cmdable, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}

// PeekDLQ returns up to n of the most recently parked entries without removing them.
func PeekDLQ(ctx context.Context, rdb redis.Cmdable, queue string, n int64) ([]DLQEntry, error) {
	raws, err := rdb.LRange(ctx, DLQPrefix+queue, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]DLQEntry, 0, len(raws))
	for _, raw := range raws {
		var e DLQEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			log.Warn().Err(err).Str("queue", queue).Msg("dlq: skipping unreadable entry")
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
