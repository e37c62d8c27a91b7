package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dub-translator/internal/domain/entities"
	"dub-translator/internal/domain/repositories"
	consts "dub-translator/pkg/constants"

	"github.com/go-redis/redis/v8"
)

const jobKeyPrefix = "dubbing:job:"

type redisJobRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisJobRepository(rdb *redis.Client, ttl time.Duration) repositories.JobRepository {
	return &redisJobRepository{rdb: rdb, ttl: ttl}
}

func jobKey(dubbingID string) string {
	return jobKeyPrefix + dubbingID
}

func (r *redisJobRepository) Save(ctx context.Context, job *entities.DubbingJob) error {
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	b, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to serialize job: %w", err)
	}
	return r.rdb.Set(ctx, jobKey(job.DubbingID), b, r.ttl).Err()
}

func (r *redisJobRepository) Get(ctx context.Context, dubbingID string) (*entities.DubbingJob, error) {
	b, err := r.rdb.Get(ctx, jobKey(dubbingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	var job entities.DubbingJob
	if err := json.Unmarshal(b, &job); err != nil {
		return nil, fmt.Errorf("failed to deserialize job: %w", err)
	}
	return &job, nil
}

// UpdateStatus WATCH ile okuyup yazar, böylece terminal geçişi tek bir çağrıda raporlanır
func (r *redisJobRepository) UpdateStatus(ctx context.Context, dubbingID, status string) (*entities.DubbingJob, bool, error) {
	key := jobKey(dubbingID)
	var (
		updated        entities.DubbingJob
		becameTerminal bool
	)

	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		b, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return repositories.ErrJobNotFound
		}
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &updated); err != nil {
			return fmt.Errorf("failed to deserialize job: %w", err)
		}

		wasTerminal := consts.IsTerminalStatus(updated.Status)
		updated.Status = status
		updated.UpdatedAt = time.Now().UTC()
		becameTerminal = !wasTerminal && consts.IsTerminalStatus(status)

		out, err := json.Marshal(&updated)
		if err != nil {
			return fmt.Errorf("failed to serialize job: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, redis.KeepTTL)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return nil, false, err
	}
	return &updated, becameTerminal, nil
}
