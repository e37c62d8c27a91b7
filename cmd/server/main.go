package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "dub-translator/docs"

	"dub-translator/internal/delivery/http/routers"
	"dub-translator/internal/domain/repositories"
	"dub-translator/internal/infrastructure/db"
	"dub-translator/internal/infrastructure/elevenlabs"
	"dub-translator/internal/infrastructure/processor"
	"dub-translator/internal/infrastructure/queue"
	infra_repo "dub-translator/internal/infrastructure/repositories"
	"dub-translator/internal/infrastructure/storage"
	"dub-translator/internal/pkg/config"
	applog "dub-translator/internal/pkg/logger"
	"dub-translator/internal/usecases"
	consts "dub-translator/pkg/constants"
	"dub-translator/pkg/errors/i18n"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

// @title        Dub Translator API
// @version      1.0
// @description  Relay between recorded speech and the ElevenLabs dubbing API.
// @host         localhost:3000
// @BasePath     /api
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

	if err := i18n.Load(cfg.Server.ErrorLocale); err != nil {
		zl.Fatal("i18n load failed", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		zl.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.Dubbing.APIKey == "" {
		zl.Warn("ELEVENLABS_API_KEY is empty, upstream calls will be rejected")
	}

	ctx := context.Background()
	var closers []func() error

	// Job tracking: Redis varsa orada, yoksa bellekte
	var (
		rdb  *redis.Client
		jobs repositories.JobRepository
	)
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       int(cfg.Redis.DB),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Fatal("redis bağlantısı başarısız", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		}
		jobs = infra_repo.NewRedisJobRepository(rdb, cfg.Redis.JobTTL)
		closers = append(closers, rdb.Close)
	} else {
		jobs = infra_repo.NewInMemoryJobRepository()
	}

	// History
	var history repositories.HistoryRepository
	if cfg.Database.Driver == "postgres" {
		database, err := db.NewPostgresDB(cfg.Database)
		if err != nil {
			zl.Fatal("DB bağlantısı başarısız", zap.Error(err))
		}
		if cfg.Database.Migrate {
			if err := db.Migrate(database); err != nil {
				zl.Fatal("migration failed", zap.Error(err))
			}
		}
		sqlDB, err := database.DB()
		if err != nil {
			zl.Fatal("sql.DB alınamadı", zap.Error(err))
		}
		closers = append(closers, sqlDB.Close)
		history = infra_repo.NewHistoryRepository(database)
	} else {
		history = infra_repo.NewInMemoryHistoryRepository()
	}

	archive, err := storage.NewStrategy(ctx, cfg.Archive)
	if err != nil {
		zl.Fatal("arşiv storage oluşturulamadı", zap.Error(err))
	}

	gateway := elevenlabs.NewClient(cfg.Dubbing)

	// Archive jobs: Redis kuyruğu cmd/worker tarafından tüketilir, yoksa işler bu süreçte yapılır
	var (
		publisher queue.Publisher
		pool      *queue.WorkerPool
	)
	if rdb != nil {
		publisher = queue.NewRedisQueue(rdb, cfg.Redis.Queue, zl)
	} else {
		archiver := processor.NewArchiveProcessor(gateway, archive, history, zl)
		pool = queue.NewWorkerPool(int(cfg.Archive.WorkerCount), archiver, zl)
		publisher = pool
	}

	dubbingService := usecases.NewDubbingService(gateway, jobs, history, archive, publisher, zl)

	// Cleanup cron: sadece local arşiv
	var (
		scheduler      *cron.Cron
		cleanupService usecases.CleanupService
	)
	if cfg.Archive.Driver == "local" {
		cleanupService = usecases.NewCleanupService(cfg.Archive.Dir, zl)
		scheduler = cron.New(cron.WithSeconds())
		_, err := scheduler.AddFunc(cfg.Archive.CleanupCron, func() {
			removed, err := cleanupService.CleanupOldArchives(cfg.Archive.Retention)
			if err != nil {
				zl.Warn("archive cleanup finished with errors", zap.Int("removed", removed), zap.Error(err))
				return
			}
			if removed > 0 {
				zl.Info("archive cleanup", zap.Int("removed", removed))
			}
		})
		if err != nil {
			zl.Fatal("cleanup cron kurulamadı", zap.String("spec", cfg.Archive.CleanupCron), zap.Error(err))
		}
		scheduler.Start()
	}

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Server.MaxUploadSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupDubbingRoutes(app, dubbingService, zl)
	if cleanupService != nil {
		routers.SetupCleanupRoutes(app, cleanupService, cfg.Archive.Retention, zl)
	}

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zl.Info("server starting", zap.String("addr", addr))

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			zl.Fatal("Server başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Shutdown sinyali alındı, server kapatılıyor...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		zl.Error("Server düzgün kapatılamadı", zap.Error(err))
	}

	// HTTP durduktan sonra arka plan işleri paralel kapatılır
	g, gctx := errgroup.WithContext(ctxShut)
	if scheduler != nil {
		g.Go(func() error {
			select {
			case <-scheduler.Stop().Done():
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if pool != nil {
		g.Go(func() error {
			pool.Shutdown()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zl.Error("background shutdown incomplete", zap.Error(err))
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			zl.Warn("close failed", zap.Error(err))
		}
	}
	zl.Info("Server düzgün bir şekilde kapatıldı")
}
