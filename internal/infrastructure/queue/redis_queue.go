package queue

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const brpopTimeout = 2 * time.Second

type RedisQueue struct {
	rdb  *redis.Client
	name string
	log  *zap.Logger
}

func NewRedisQueue(rdb *redis.Client, name string, log *zap.Logger) *RedisQueue {
	return &RedisQueue{rdb: rdb, name: name, log: log}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	serialized, err := SerializeJob(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.name, serialized).Err()
}

// Consume BRPOP döngüsü; her işi handle'a verir, ctx bitince döner
func (q *RedisQueue) Consume(ctx context.Context, handle func(Job) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		val, err := q.rdb.BRPop(ctx, brpopTimeout, q.name).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			q.log.Warn("BRPop failed", zap.Error(err))
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		job, err := DeserializeJob(val[1])
		if err != nil {
			q.log.Warn("dropping malformed job", zap.Error(err))
			continue
		}
		if err := handle(*job); err != nil {
			return err
		}
	}
}
