package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordingProcessor struct {
	mu   sync.Mutex
	jobs []Job
	err  error
}

func (p *recordingProcessor) ArchiveDub(_ context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, job)
	return p.err
}

func (p *recordingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}

func TestWorkerPoolProcessesJobs(t *testing.T) {
	proc := &recordingProcessor{}
	pool := NewWorkerPool(3, proc, zap.NewNop())

	for _, id := range []string{"a", "b", "c", "d"} {
		if err := pool.Enqueue(context.Background(), Job{Type: JobArchiveDub, DubbingID: id}); err != nil {
			t.Fatalf("Enqueue(%s): %v", id, err)
		}
	}
	pool.Shutdown()

	if got := proc.count(); got != 4 {
		t.Fatalf("processed %d jobs, want 4", got)
	}
}

func TestWorkerPoolFailingJobDoesNotStopWorkers(t *testing.T) {
	proc := &recordingProcessor{err: errors.New("upstream down")}
	pool := NewWorkerPool(1, proc, zap.NewNop())

	_ = pool.Enqueue(context.Background(), Job{Type: JobArchiveDub, DubbingID: "a"})
	_ = pool.Enqueue(context.Background(), Job{Type: "unknown", DubbingID: "b"})
	_ = pool.Enqueue(context.Background(), Job{Type: JobArchiveDub, DubbingID: "c"})
	pool.Shutdown()

	if got := proc.count(); got != 2 {
		t.Fatalf("processed %d archive jobs, want 2", got)
	}
}

func TestWorkerPoolEnqueueAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(1, &recordingProcessor{}, zap.NewNop())
	pool.Shutdown()
	pool.Shutdown()

	if err := pool.Enqueue(context.Background(), Job{DubbingID: "late"}); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("err = %v, want ErrPoolClosed", err)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	in := Job{Type: JobArchiveDub, DubbingID: "abc123", SourceLang: "en", TargetLang: "es", EnqueuedAt: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)}
	s, err := SerializeJob(in)
	if err != nil {
		t.Fatalf("SerializeJob: %v", err)
	}
	out, err := DeserializeJob(s)
	if err != nil {
		t.Fatalf("DeserializeJob: %v", err)
	}
	if *out != in {
		t.Fatalf("round trip = %+v, want %+v", *out, in)
	}
	if _, err := DeserializeJob("{not json"); err == nil {
		t.Fatal("expected error for malformed job")
	}
}
