package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotwise/config"
	preferencesRepo "slotwise/database/repository/preferences"
	"slotwise/services/availability"
	"slotwise/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitPrewarmWorker runs the async worker in background. It consumes
// availability prewarm tasks so the first suggestion request of the day hits
// a warm cache.
func InitPrewarmWorker(source availability.Source) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePrewarmAvailability, handlePrewarmTask(source))

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[PrewarmWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[PrewarmWorker] Failed to start worker: %v", err)
		}
	}()
}

func handlePrewarmTask(source availability.Source) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.PrewarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PrewarmHandler] Invalid payload: %v", err)
			return err
		}

		// Fetching through the cached source is what stores the result.
		if _, err := source.GetOpenSlots(ctx, p.UserID, p.Date); err != nil {
			log.Printf("[PrewarmHandler] Failed to prewarm %s/%s: %v", p.UserID, p.Date, err)
			return err
		}
		return nil
	}
}

// SchedulePrewarms enqueues a prewarm task for each user with stored
// preferences, covering today and tomorrow. Called periodically from main.
func SchedulePrewarms(repo preferencesRepo.PreferencesRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userIDs, err := repo.ListUserIDs(ctx)
	if err != nil {
		log.Printf("[PrewarmScheduler] Failed to list users: %v", err)
		return
	}

	now := time.Now().UTC()
	dates := []string{
		now.Format("2006-01-02"),
		now.AddDate(0, 0, 1).Format("2006-01-02"),
	}

	for _, userID := range userIDs {
		for _, date := range dates {
			task, opts, err := tasks.NewPrewarmTask(tasks.PrewarmPayload{UserID: userID, Date: date}, now)
			if err != nil {
				log.Printf("[PrewarmScheduler] Failed to build task for %s/%s: %v", userID, date, err)
				continue
			}
			if _, err := client.EnqueueContext(ctx, task, opts...); err != nil {
				log.Printf("[PrewarmScheduler] Failed to enqueue %s/%s: %v", userID, date, err)
			}
		}
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[PrewarmWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
