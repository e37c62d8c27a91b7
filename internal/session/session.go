package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dub-translator/internal/domain/dto"
	"dub-translator/pkg/constants"
	"dub-translator/pkg/transcript"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCancelled is returned by Submit when the job was discarded before the upload finished.
var ErrCancelled = errors.New("session: job cancelled")

type Options struct {
	PollInterval      time.Duration
	FallbackDelay     time.Duration
	TranscriptFormat  string
	TranscriptTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.FallbackDelay <= 0 {
		o.FallbackDelay = 10 * time.Second
	}
	if o.TranscriptFormat == "" {
		o.TranscriptFormat = constants.DefaultTranscriptFormat
	}
	if o.TranscriptTimeout <= 0 {
		o.TranscriptTimeout = 30 * time.Second
	}
	return o
}

// Session holds the languages, the in-flight job and the conversation of one user.
type Session struct {
	backend Backend
	opts    Options
	log     *zap.Logger
	conv    *Conversation

	mu         sync.Mutex
	sourceLang string
	targetLang string
	state      State
	err        error
	job        *Job
	current    *handle
	gen        uint64

	transcripts sync.WaitGroup
}

func New(backend Backend, sourceLang, targetLang string, opts Options, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if sourceLang == "" {
		sourceLang = constants.DefaultSourceLang
	}
	if targetLang == "" {
		targetLang = constants.DefaultTargetLang
	}
	return &Session{
		backend:    backend,
		opts:       opts.withDefaults(),
		log:        log,
		conv:       NewConversation(),
		sourceLang: sourceLang,
		targetLang: targetLang,
		state:      StateIdle,
	}
}

// Submit uploads a recording and, on success, starts the reconciliation loop in the background.
// Any job still in flight is discarded first.
func (s *Session) Submit(ctx context.Context, audio []byte, filename string) error {
	s.mu.Lock()
	s.discardLocked()
	s.gen++
	loopCtx, cancel := context.WithCancel(ctx)
	h := &handle{gen: s.gen, cancel: cancel, done: make(chan struct{})}
	s.current = h
	s.state = StateUploading
	s.err = nil
	src, tgt := s.sourceLang, s.targetLang
	s.mu.Unlock()

	resp, err := s.backend.Upload(loopCtx, UploadInput{
		Audio:      audio,
		Filename:   filename,
		SourceLang: src,
		TargetLang: tgt,
	})

	s.mu.Lock()
	if s.current != h {
		s.mu.Unlock()
		close(h.done)
		return ErrCancelled
	}
	if err != nil {
		err = fmt.Errorf("upload failed: %w", err)
		s.failLocked(err)
		s.mu.Unlock()
		h.cancel()
		close(h.done)
		return err
	}

	delay := time.Duration(resp.ExpectedDurationSec * float64(time.Second))
	if delay <= 0 {
		delay = s.opts.FallbackDelay
	}
	job := &Job{
		ID:               resp.DubbingID,
		SourceLang:       src,
		TargetLang:       tgt,
		ExpectedDuration: delay,
		Status:           constants.StatusQueued,
		SubmittedAt:      time.Now(),
	}
	s.job = job
	s.state = StateWaiting
	s.mu.Unlock()

	s.log.Info("dubbing job submitted",
		zap.String("dubbing_id", job.ID),
		zap.String("source_lang", src),
		zap.String("target_lang", tgt),
		zap.Duration("first_check_in", delay),
	)

	go s.run(loopCtx, h, *job, audio)
	return nil
}

// run waits the expected duration once, then polls until a terminal status and fetches the audio.
func (s *Session) run(ctx context.Context, h *handle, job Job, sourceAudio []byte) {
	defer close(h.done)
	defer h.cancel()

	timer := time.NewTimer(job.ExpectedDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.fail(h, fmt.Errorf("dubbing %s stopped before first check: %w", job.ID, ctx.Err()))
		return
	case <-timer.C:
	}

	if !s.transition(h, StatePolling) {
		return
	}

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for {
		st, err := s.backend.Status(ctx, job.ID)
		if err != nil {
			s.fail(h, fmt.Errorf("status check failed: %w", err))
			return
		}
		if !s.recordStatus(h, st.Status) {
			return
		}
		if constants.IsTerminalStatus(st.Status) {
			break
		}
		if strings.EqualFold(st.Status, constants.StatusFailed) {
			s.fail(h, fmt.Errorf("dubbing %s failed upstream", job.ID))
			return
		}

		select {
		case <-ctx.Done():
			s.fail(h, fmt.Errorf("dubbing %s stopped while polling: %w", job.ID, ctx.Err()))
			return
		case <-ticker.C:
		}
	}
	ticker.Stop()

	audio, err := s.backend.Audio(ctx, job.ID, job.TargetLang)
	if err != nil {
		s.fail(h, fmt.Errorf("audio fetch failed: %w", err))
		return
	}

	entry, ok := s.complete(h, audio, sourceAudio)
	if !ok {
		return
	}

	s.fetchTranscripts(ctx, h, entry)
}

// fetchTranscripts is best effort; failures are logged and never touch session state.
func (s *Session) fetchTranscripts(ctx context.Context, h *handle, entry Entry) {
	for _, role := range []string{constants.DefaultTranscriptRole, "source"} {
		s.transcripts.Add(1)
		go func(role string) {
			defer s.transcripts.Done()

			tctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.TranscriptTimeout)
			defer cancel()

			body, err := s.backend.Transcript(tctx, dto.TranscriptRequestDTO{
				DubbingID:  entry.DubbingID,
				Language:   role,
				SourceLang: entry.SourceLang,
				TargetLang: entry.TargetLang,
				Format:     s.opts.TranscriptFormat,
			})
			if err != nil {
				s.log.Warn("transcript fetch failed",
					zap.String("dubbing_id", entry.DubbingID),
					zap.String("language", role),
					zap.Error(err),
				)
				return
			}
			text := transcript.Clean(body)
			if text == "" || !s.conv.AttachTranscript(entry.ID, role, text) {
				return
			}
			if role == constants.DefaultTranscriptRole {
				s.mu.Lock()
				if s.current == h && s.job != nil {
					s.job.Transcript = text
				}
				s.mu.Unlock()
			}
		}(role)
	}
}

func (s *Session) transition(h *handle, state State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != h {
		return false
	}
	s.state = state
	return true
}

func (s *Session) recordStatus(h *handle, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != h {
		return false
	}
	s.job.Status = status
	if constants.IsTerminalStatus(status) {
		s.state = StateFetching
	}
	return true
}

func (s *Session) complete(h *handle, audio, sourceAudio []byte) (Entry, bool) {
	s.mu.Lock()
	if s.current != h {
		s.mu.Unlock()
		return Entry{}, false
	}
	s.job.Audio = audio
	s.state = StateDone
	job := *s.job
	s.mu.Unlock()

	entry := s.conv.Append(Entry{
		ID:          uuid.New(),
		DubbingID:   job.ID,
		SourceLang:  job.SourceLang,
		TargetLang:  job.TargetLang,
		SourceAudio: sourceAudio,
		DubbedAudio: audio,
	})
	s.log.Info("dubbing completed",
		zap.String("dubbing_id", job.ID),
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("elapsed", time.Since(job.SubmittedAt)),
	)
	return entry, true
}

func (s *Session) fail(h *handle, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != h {
		return
	}
	s.failLocked(err)
}

func (s *Session) failLocked(err error) {
	s.state = StateError
	s.err = err
	s.log.Error("dubbing job failed", zap.Error(err))
}

// discardLocked cancels the deferred check and the poll ticker of the current job and drops it.
func (s *Session) discardLocked() {
	if s.current != nil {
		s.current.cancel()
		s.current = nil
	}
	s.job = nil
	s.err = nil
	s.state = StateIdle
}

// BeginRecording discards any in-flight job.
func (s *Session) BeginRecording() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
}

func (s *Session) SetLanguages(sourceLang, targetLang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
	if sourceLang != "" {
		s.sourceLang = sourceLang
	}
	if targetLang != "" {
		s.targetLang = targetLang
	}
}

func (s *Session) SwapLanguages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
	s.sourceLang, s.targetLang = s.targetLang, s.sourceLang
}

// Wait blocks until the current job reaches done or error, or is discarded.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	h := s.current
	s.mu.Unlock()

	if h != nil {
		select {
		case <-h.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.Err()
}

// Close discards the in-flight job and waits for pending transcript fetches.
func (s *Session) Close() {
	s.BeginRecording()
	s.transcripts.Wait()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session) Job() (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return Job{}, false
	}
	return *s.job, true
}

func (s *Session) Languages() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceLang, s.targetLang
}

func (s *Session) Conversation() *Conversation {
	return s.conv
}
