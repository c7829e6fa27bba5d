package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypePrewarmAvailability = "availability:prewarm"

// PrewarmPayload identifies one availability fetch to warm the cache with.
type PrewarmPayload struct {
	UserID string `json:"userId"`
	Date   string `json:"date"` // "2006-01-02"
}

// NewPrewarmTask builds an asynq task that refreshes the availability cache
// for one user and date at fireAt.
func NewPrewarmTask(payload PrewarmPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePrewarmAvailability, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
