package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"dub-translator/internal/domain/dto"
	"dub-translator/internal/domain/entities"
	"dub-translator/internal/domain/repositories"
	"dub-translator/internal/infrastructure/queue"
	consts "dub-translator/pkg/constants"
	"dub-translator/pkg/errors"
	"dub-translator/pkg/file"
	"dub-translator/pkg/helper"

	"go.uber.org/zap"
)

type DubbingService interface {
	Upload(ctx context.Context, req *dto.UploadRequestDTO, audio io.Reader) (*dto.UploadResponse, error)
	Status(ctx context.Context, dubbingID string) (*dto.StatusResponse, error)
	// Audio resolves req.TargetLang in place before opening the stream.
	Audio(ctx context.Context, req *dto.AudioRequestDTO) (*repositories.AudioStream, error)
	Transcript(ctx context.Context, req *dto.TranscriptRequestDTO) (string, error)
	GetJob(ctx context.Context, dubbingID string) (*dto.JobResponse, error)
	ListHistory(ctx context.Context, limit int) ([]dto.HistoryRecordResponse, error)
	// ArchivedAudio opens the locally kept copy written by the archive worker.
	ArchivedAudio(ctx context.Context, dubbingID string) (*repositories.AudioStream, string, error)
}

type dubbingService struct { //* iş mantığı yok denecek kadar az, sadece upstream'e aktarır ve takip eder
	gateway   repositories.DubbingGateway
	jobs      repositories.JobRepository
	history   repositories.HistoryRepository
	archive   repositories.StorageStrategy
	publisher queue.Publisher // nil ise arşivleme kapalı
	log       *zap.Logger
}

func NewDubbingService(
	gateway repositories.DubbingGateway,
	jobs repositories.JobRepository,
	history repositories.HistoryRepository,
	archive repositories.StorageStrategy,
	publisher queue.Publisher,
	log *zap.Logger,
) DubbingService {
	return &dubbingService{
		gateway:   gateway,
		jobs:      jobs,
		history:   history,
		archive:   archive,
		publisher: publisher,
		log:       log,
	}
}

// statusCoder is implemented by upstream errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

func upstreamStatus(err error) int {
	var sc statusCoder
	if stderrors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return 0
}

func (s *dubbingService) Upload(ctx context.Context, req *dto.UploadRequestDTO, audio io.Reader) (*dto.UploadResponse, error) {
	if audio == nil {
		return nil, errors.ErrMissingAudio(nil)
	}
	sourceLang := helper.DefaultString(req.SourceLang, consts.DefaultSourceLang)
	targetLang := helper.DefaultString(req.TargetLang, consts.DefaultTargetLang)
	if !helper.IsValidLanguageCode(sourceLang) || !helper.IsValidLanguageCode(targetLang) {
		return nil, errors.ErrInvalidLanguage(fmt.Errorf("source=%q target=%q", sourceLang, targetLang))
	}

	resp, err := s.gateway.CreateDubbing(ctx, repositories.DubbingRequest{
		Audio:      audio,
		Filename:   req.Filename,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return nil, errors.ErrUploadFailed(upstreamStatus(err), err)
	}

	job := &entities.DubbingJob{
		DubbingID:           resp.DubbingID,
		SourceLang:          sourceLang,
		TargetLang:          targetLang,
		ExpectedDurationSec: resp.ExpectedDurationSec,
		Status:              consts.StatusDubbing,
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		// takip kaydı olmadan da istemci devam edebilir
		s.log.Warn("job tracking save failed", zap.String("dubbing_id", resp.DubbingID), zap.Error(err))
	}

	s.log.Info("dubbing submitted",
		zap.String("dubbing_id", resp.DubbingID),
		zap.String("source_lang", sourceLang),
		zap.String("target_lang", targetLang),
		zap.Float64("expected_duration_sec", resp.ExpectedDurationSec),
	)
	return resp, nil
}

func (s *dubbingService) Status(ctx context.Context, dubbingID string) (*dto.StatusResponse, error) {
	st, err := s.gateway.GetDubbing(ctx, dubbingID)
	if err != nil {
		return nil, errors.ErrUpstream(upstreamStatus(err), err)
	}

	job, becameTerminal, err := s.jobs.UpdateStatus(ctx, dubbingID, st.Status)
	switch {
	case stderrors.Is(err, repositories.ErrJobNotFound):
		s.log.Debug("status for untracked dubbing", zap.String("dubbing_id", dubbingID))
	case err != nil:
		s.log.Warn("job tracking update failed", zap.String("dubbing_id", dubbingID), zap.Error(err))
	case becameTerminal:
		s.enqueueArchive(ctx, job)
	}

	return st, nil
}

func (s *dubbingService) enqueueArchive(ctx context.Context, job *entities.DubbingJob) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Enqueue(ctx, queue.Job{
		Type:                queue.JobArchiveDub,
		DubbingID:           job.DubbingID,
		SourceLang:          job.SourceLang,
		TargetLang:          job.TargetLang,
		ExpectedDurationSec: job.ExpectedDurationSec,
		EnqueuedAt:          time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("archive job enqueue failed", zap.String("dubbing_id", job.DubbingID), zap.Error(err))
		return
	}
	s.log.Info("archive job queued", zap.String("dubbing_id", job.DubbingID))
}

// resolveLangs: query parametresi -> takip kaydı -> varsayılan
func (s *dubbingService) resolveLangs(ctx context.Context, dubbingID, sourceLang, targetLang string) (string, string) {
	if sourceLang == "" || targetLang == "" {
		if job, err := s.jobs.Get(ctx, dubbingID); err == nil {
			sourceLang = helper.DefaultString(sourceLang, job.SourceLang)
			targetLang = helper.DefaultString(targetLang, job.TargetLang)
		}
	}
	return helper.DefaultString(sourceLang, consts.DefaultSourceLang),
		helper.DefaultString(targetLang, consts.DefaultTargetLang)
}

func (s *dubbingService) Audio(ctx context.Context, req *dto.AudioRequestDTO) (*repositories.AudioStream, error) {
	_, req.TargetLang = s.resolveLangs(ctx, req.DubbingID, consts.DefaultSourceLang, req.TargetLang)
	if !helper.IsValidLanguageCode(req.TargetLang) {
		return nil, errors.ErrInvalidLanguage(fmt.Errorf("target=%q", req.TargetLang))
	}

	stream, err := s.gateway.DubbedAudio(ctx, req.DubbingID, req.TargetLang)
	if err != nil {
		return nil, errors.ErrUpstream(upstreamStatus(err), err)
	}
	return stream, nil
}

func (s *dubbingService) Transcript(ctx context.Context, req *dto.TranscriptRequestDTO) (string, error) {
	req.Language = helper.DefaultString(req.Language, consts.DefaultTranscriptRole)
	req.Format = helper.DefaultString(req.Format, consts.DefaultTranscriptFormat)
	if !helper.IsValidTranscriptFormat(req.Format) {
		return "", errors.ErrInvalidFormat(fmt.Errorf("format=%q", req.Format))
	}
	if !helper.IsValidTranscriptRole(req.Language) {
		return "", errors.ErrInvalidLanguage(fmt.Errorf("language=%q", req.Language))
	}

	req.SourceLang, req.TargetLang = s.resolveLangs(ctx, req.DubbingID, req.SourceLang, req.TargetLang)
	lang := req.TargetLang
	if req.Language == "source" {
		lang = req.SourceLang
	}
	if !helper.IsValidLanguageCode(lang) {
		return "", errors.ErrInvalidLanguage(fmt.Errorf("lang=%q", lang))
	}

	text, err := s.gateway.Transcript(ctx, req.DubbingID, lang, req.Format)
	if err != nil {
		return "", errors.ErrUpstream(upstreamStatus(err), err)
	}
	return text, nil
}

func (s *dubbingService) GetJob(ctx context.Context, dubbingID string) (*dto.JobResponse, error) {
	job, err := s.jobs.Get(ctx, dubbingID)
	if stderrors.Is(err, repositories.ErrJobNotFound) {
		return nil, errors.ErrNotFound(err)
	}
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	return &dto.JobResponse{
		DubbingID:           job.DubbingID,
		SourceLang:          job.SourceLang,
		TargetLang:          job.TargetLang,
		ExpectedDurationSec: job.ExpectedDurationSec,
		Status:              job.Status,
		CreatedAt:           job.CreatedAt,
		UpdatedAt:           job.UpdatedAt,
	}, nil
}

func (s *dubbingService) ListHistory(ctx context.Context, limit int) ([]dto.HistoryRecordResponse, error) {
	records, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	out := make([]dto.HistoryRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.HistoryRecordResponse{
			ID:                  r.ID.String(),
			DubbingID:           r.DubbingID,
			SourceLang:          r.SourceLang,
			TargetLang:          r.TargetLang,
			Status:              r.Status,
			AudioPath:           r.AudioPath,
			Checksum:            r.Checksum,
			ExpectedDurationSec: r.ExpectedDurationSec,
			CreatedAt:           r.CreatedAt,
			CompletedAt:         r.CompletedAt,
		})
	}
	return out, nil
}

func (s *dubbingService) ArchivedAudio(ctx context.Context, dubbingID string) (*repositories.AudioStream, string, error) {
	rec, err := s.history.GetByDubbingID(ctx, dubbingID)
	if stderrors.Is(err, repositories.ErrRecordNotFound) {
		return nil, "", errors.ErrNotFound(err)
	}
	if err != nil {
		return nil, "", errors.ErrInternal(err)
	}
	if s.archive == nil {
		return nil, "", errors.ErrNotFound(fmt.Errorf("archive storage disabled"))
	}

	body, err := s.archive.Open(ctx, file.ArchiveKey(rec.DubbingID, rec.TargetLang))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, "", errors.ErrNotFound(err)
	}
	if err != nil {
		return nil, "", errors.ErrInternal(err)
	}
	return &repositories.AudioStream{Body: body, ContentType: "audio/mpeg", ContentLength: -1}, rec.TargetLang, nil
}
