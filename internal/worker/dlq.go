package worker

// dlq.go — Dead letter queue for failed render jobs.
// Each source queue gets its own Redis list under dlq:{queue}; entries
// carry enough metadata to re-run the job after fixing the cause (missing
// nota row, unwritable storage dir, corrupt payload); the admin DLQ
// endpoints push them back onto the original queue.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// dlqRedis is the slice of redis commands the DLQ needs; *redis.Client
// satisfies it.
type dlqRedis interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	RPop(ctx context.Context, key string) *redis.StringCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
}

// DLQEntry wraps a failed job with metadata for debugging.
type DLQEntry struct {
	OriginalQueue string          `json:"original_queue"`
	JobType       string          `json:"job_type"`
	Payload       json.RawMessage `json:"payload"`
	Reason        string          `json:"reason"`
	FailedAt      string          `json:"failed_at"` // RFC 3339, UTC
	Attempts      int             `json:"attempts"`
}

// SendToDLQ records a job that exhausted its retries.
func SendToDLQ(ctx context.Context, rdb dlqRedis, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
	entry := DLQEntry{
		OriginalQueue: queue,
		JobType:       jobType,
		Payload:       payload,
		Reason:        reason,
		FailedAt:      time.Now().UTC().Format(time.RFC3339),
		Attempts:      attempts,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal entry")
		return
	}

	if err := rdb.LPush(ctx, DLQPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: push entry")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Str("reason", reason).
		Int("attempts", attempts).
		Msg("dlq: job parked")
}

// RequeueFromDLQ moves up to max entries back onto their original queue
// (max <= 0 drains everything). Returns the number of jobs re-enqueued.
func RequeueFromDLQ(ctx context.Context, rdb dlqRedis, queue string, max int) (int, error) {
	moved := 0
	for max <= 0 || moved < max {
		raw, err := rdb.RPop(ctx, DLQPrefix+queue).Result()
		if err == redis.Nil {
			break
		}
		if err != nil {
			return moved, err
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("dlq: skipping corrupt entry")
			continue
		}

		job := Job{Type: entry.JobType, Payload: entry.Payload}
		encoded, err := json.Marshal(job)
		if err != nil {
			return moved, err
		}
		if err := rdb.LPush(ctx, entry.OriginalQueue, encoded).Err(); err != nil {
			return moved, err
		}
		moved++
	}
	if moved > 0 {
		log.Info().Str("queue", queue).Int("count", moved).Msg("dlq: jobs re-enqueued")
	}
	return moved, nil
}

// DLQLength reports the number of parked entries for a queue.
func DLQLength(ctx context.Context, rdb dlqRedis, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
