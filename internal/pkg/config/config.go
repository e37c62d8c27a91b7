package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Dubbing  DubbingConfig
	Poll     PollConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Archive  ArchiveConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port          string
	Host          string
	MaxUploadSize int64 // bytes
	ErrorLocale   string
}

// DubbingConfig ElevenLabs bağlantı ayarları
type DubbingConfig struct {
	APIKey         string
	BaseURL        string
	NumSpeakers    int64
	Watermark      bool
	RequestTimeout time.Duration // 0 = http client varsayılanı
}

type PollConfig struct {
	Interval      time.Duration
	FallbackDelay time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int64
	JobTTL   time.Duration
	Queue    string
}

// Enabled reports whether a Redis server was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type DatabaseConfig struct {
	Driver   string // memory | postgres
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Migrate  bool
}

type ArchiveConfig struct {
	Driver      string // local | s3
	Dir         string
	S3Bucket    string
	S3Region    string
	Retention   time.Duration
	CleanupCron string
	WorkerCount int64
}

type LogConfig struct {
	Level  string
	Format string // json | console
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:          getEnv("SERVER_PORT", "3000"),
			Host:          getEnv("SERVER_HOST", "localhost"),
			MaxUploadSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 50*1024*1024), // 50MB
			ErrorLocale:   getEnv("ERROR_LOCALE", "en"),
		},
		Dubbing: DubbingConfig{
			APIKey:         getEnv("ELEVENLABS_API_KEY", ""),
			BaseURL:        getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1"),
			NumSpeakers:    getEnvAsInt64("DUBBING_NUM_SPEAKERS", 1),
			Watermark:      getEnvAsBool("DUBBING_WATERMARK", true),
			RequestTimeout: getEnvAsDuration("DUBBING_REQUEST_TIMEOUT", 0),
		},
		Poll: PollConfig{
			Interval:      getEnvAsDuration("POLL_INTERVAL", 3*time.Second),
			FallbackDelay: getEnvAsDuration("POLL_FALLBACK_DELAY", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt64("REDIS_DB", 0),
			JobTTL:   getEnvAsDuration("REDIS_JOB_TTL", 24*time.Hour),
			Queue:    getEnv("REDIS_QUEUE", "dubbing_job_queue"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "memory"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "dub_translator"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Migrate:  getEnvAsBool("RUN_AUTO_MIGRATION", false),
		},
		Archive: ArchiveConfig{
			Driver:      getEnv("ARCHIVE_DRIVER", "local"),
			Dir:         getEnv("ARCHIVE_DIR", "archive"),
			S3Bucket:    getEnv("ARCHIVE_S3_BUCKET", ""),
			S3Region:    getEnv("ARCHIVE_S3_REGION", "eu-central-1"),
			Retention:   getEnvAsDuration("ARCHIVE_RETENTION", 72*time.Hour),
			CleanupCron: getEnv("ARCHIVE_CLEANUP_CRON", "0 */5 * * * *"),
			WorkerCount: getEnvAsInt64("ARCHIVE_WORKERS", 2),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	// Arşiv klasörünü proje köküne göre oluşturmak için:
	if config.Archive.Driver == "local" {
		if !filepath.IsAbs(config.Archive.Dir) {
			projectRoot, err := findProjectRoot()
			if err != nil {
				panic(err)
			}
			config.Archive.Dir = filepath.Join(projectRoot, config.Archive.Dir)
		}
		if err := os.MkdirAll(config.Archive.Dir, 0755); err != nil {
			panic(err)
		}
	}

	return config
}

// ErrSplitHistory: with Redis the archive runs in cmd/worker, so history must live in a shared database.
var ErrSplitHistory = errors.New("config: REDIS_HOST is set but DB_DRIVER is not postgres; worker history would be invisible to the server")

// Validate checks settings that only make sense together.
func (c *Config) Validate() error {
	if c.Redis.Enabled() && c.Database.Driver != "postgres" {
		return ErrSplitHistory
	}
	return nil
}

func findProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Root'a ulaştık, go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("3s", "1m") or bare seconds ("10").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	return defaultValue
}
