package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueNotaPDF = "jobs:nota_pdf"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// JobHandler processes the payload of a single dequeued job.
type JobHandler func(ctx context.Context, payload json.RawMessage)

// NotaPDFPayload is the job envelope sent to QueueNotaPDF.
type NotaPDFPayload struct {
	NotaID string `json:"nota_id"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueNotaPDF pushes a nota PDF rendering job to Redis.
func (d *Dispatcher) EnqueueNotaPDF(ctx context.Context, payload NotaPDFPayload) error {
	return d.enqueue(ctx, QueueNotaPDF, "nota_pdf", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the job queues.
// handlers maps job type to its processor; unknown types go to the DLQ.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, handlers map[string]JobHandler) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, handlers)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, handlers map[string]JobHandler) {
	queues := []string{QueueNotaPDF}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, result[0], result[1], handlers)
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, queue, raw string, handlers map[string]JobHandler) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}
	handler, ok := handlers[job.Type]
	if !ok {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, "no handler registered for job type", 0)
		return
	}
	log.Info().Str("type", job.Type).Str("queue", queue).Msg("processing job")
	handler(ctx, job.Payload)
}
