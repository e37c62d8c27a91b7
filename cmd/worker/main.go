package main //worker

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"dub-translator/internal/infrastructure/db"
	"dub-translator/internal/infrastructure/elevenlabs"
	"dub-translator/internal/infrastructure/processor"
	"dub-translator/internal/infrastructure/queue"
	infra_repo "dub-translator/internal/infrastructure/repositories"
	"dub-translator/internal/infrastructure/storage"
	"dub-translator/internal/pkg/config"
	applog "dub-translator/internal/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	zl, err := applog.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger oluşturulamadı: %v", err)
	}
	defer zl.Sync()

	if !cfg.Redis.Enabled() {
		zl.Fatal("worker needs REDIS_HOST; without Redis the server archives in-process")
	}
	if err := cfg.Validate(); err != nil {
		zl.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       int(cfg.Redis.DB),
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		zl.Fatal("redis bağlantısı başarısız", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
	}

	// Geçmiş server ile paylaşılan postgres'te tutulur
	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		zl.Fatal("DB bağlantısı başarısız", zap.Error(err))
	}
	history := infra_repo.NewHistoryRepository(database)

	archive, err := storage.NewStrategy(ctx, cfg.Archive)
	if err != nil {
		zl.Fatal("arşiv storage oluşturulamadı", zap.Error(err))
	}

	archiver := processor.NewArchiveProcessor(elevenlabs.NewClient(cfg.Dubbing), archive, history, zl)
	pool := queue.NewWorkerPool(int(cfg.Archive.WorkerCount), archiver, zl)

	zl.Info("worker listening", zap.String("queue", cfg.Redis.Queue), zap.Int64("workers", cfg.Archive.WorkerCount))

	// BRPOP loop; işler havuza aktarılır
	q := queue.NewRedisQueue(rdb, cfg.Redis.Queue, zl)
	if err := q.Consume(ctx, func(job queue.Job) error {
		return pool.Enqueue(ctx, job)
	}); err != nil && ctx.Err() == nil {
		zl.Error("consume stopped", zap.Error(err))
	}

	zl.Info("draining archive jobs")
	pool.Shutdown()
	zl.Info("worker stopped")
}
