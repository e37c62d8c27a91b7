package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"dub-translator/internal/delivery/apiclient"
	"dub-translator/internal/pkg/config"
	applog "dub-translator/internal/pkg/logger"
	"dub-translator/internal/session"
	"dub-translator/pkg/file"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	opts, err := parseFlags(os.Args[1:], cfg.Poll)
	if err != nil {
		os.Exit(2)
	}
	if len(opts.files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] recording1.webm [recording2.webm ...]")
		os.Exit(2)
	}

	zl, err := applog.New(config.LogConfig{Level: opts.logLevel, Format: "console"})
	if err != nil {
		log.Fatalf("logger oluşturulamadı: %v", err)
	}
	defer zl.Sync()

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		log.Fatalf("Çıktı klasörü oluşturulamadı: %v", err)
	}

	// Ctrl+C bekleyen işi iptal eder
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(apiclient.New(opts.server, nil), opts.source, opts.target, session.Options{
		PollInterval:     opts.pollInterval,
		FallbackDelay:    opts.fallbackDelay,
		TranscriptFormat: opts.format,
	}, zl)

	fmt.Printf("Sunucu: %s\n", opts.server)
	fmt.Println("Ctrl+C ile iptal edebilirsiniz...")

	for _, path := range opts.files {
		if ctx.Err() != nil {
			break
		}
		if !file.IsAudioFile(path) {
			log.Printf("%s: ses dosyası değil, atlanıyor", filepath.Base(path))
			continue
		}
		if err := dub(ctx, s, path, opts.outDir); err != nil {
			log.Printf("%s: %v", filepath.Base(path), err)
		}
		if opts.alternate {
			s.SwapLanguages()
		}
	}

	if ctx.Err() != nil {
		fmt.Println("\nİptal edildi, bekleyen iş bırakıldı.")
	}
	s.Close()
	printConversation(s.Conversation().Entries())
}

type clientFlags struct {
	server        string
	source        string
	target        string
	outDir        string
	pollInterval  time.Duration
	fallbackDelay time.Duration
	format        string
	alternate     bool
	logLevel      string
	files         []string
}

// parseFlags takes polling defaults from POLL_INTERVAL and POLL_FALLBACK_DELAY; flags override them.
func parseFlags(args []string, poll config.PollConfig) (*clientFlags, error) {
	f := &clientFlags{}
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&f.server, "server", "http://localhost:3000/api", "Server base URL")
	fs.StringVar(&f.source, "source", "en", "Kaynak dil")
	fs.StringVar(&f.target, "target", "es", "Hedef dil")
	fs.StringVar(&f.outDir, "out", ".", "Dublajlı seslerin yazılacağı klasör")
	fs.DurationVar(&f.pollInterval, "poll-interval", poll.Interval, "Status polling interval")
	fs.DurationVar(&f.fallbackDelay, "fallback-delay", poll.FallbackDelay, "First check delay when the service gives no estimate")
	fs.StringVar(&f.format, "format", "srt", "Transcript format (srt|webvtt)")
	fs.BoolVar(&f.alternate, "alternate", false, "Swap languages after every recording (two speakers)")
	fs.StringVar(&f.logLevel, "log-level", "warn", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.files = fs.Args()
	return f, nil
}

func dub(ctx context.Context, s *session.Session, path, outDir string) error {
	audio, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("dosya okunamadı: %w", err)
	}

	s.BeginRecording()
	src, tgt := s.Languages()
	fmt.Printf("\n%s (%s -> %s, %d bytes) gönderiliyor...\n", filepath.Base(path), src, tgt, len(audio))

	if err := s.Submit(ctx, audio, filepath.Base(path)); err != nil {
		return err
	}
	if job, ok := s.Job(); ok {
		fmt.Printf("Dubbing ID: %s, ilk kontrol %v sonra\n", job.ID, job.ExpectedDuration)
	}

	if err := s.Wait(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			s.BeginRecording()
		}
		return err
	}

	job, ok := s.Job()
	if !ok || s.State() != session.StateDone {
		return session.ErrCancelled
	}
	dst := filepath.Join(outDir, file.DownloadName(job.ID, job.TargetLang))
	if err := os.WriteFile(dst, job.Audio, 0644); err != nil {
		return fmt.Errorf("ses yazılamadı: %w", err)
	}
	fmt.Printf("Tamamlandı: %s\n", dst)
	return nil
}

func printConversation(entries []session.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Println("\n--- Konuşma ---")
	for i, e := range entries {
		fmt.Printf("[%d] %s  %s -> %s  (%s)\n", i+1, e.CreatedAt.Format("15:04:05"), e.SourceLang, e.TargetLang, e.DubbingID)
		if e.SourceTranscript != "" {
			fmt.Printf("    %s: %s\n", strings.ToUpper(e.SourceLang), e.SourceTranscript)
		}
		if e.TargetTranscript != "" {
			fmt.Printf("    %s: %s\n", strings.ToUpper(e.TargetLang), e.TargetTranscript)
		}
	}
}
