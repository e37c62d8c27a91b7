package queue

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Worker struct {
	ID        int        // worker id
	JobChan   <-chan Job // iş kuyruğu
	Wg        *sync.WaitGroup
	Processor Processor
	Log       *zap.Logger
}

func (w *Worker) Start(ctx context.Context) { // worker başlatma fonksiyonu
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan: //channeldan iş alınır
				if !ok {
					w.Log.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				select {
				case <-ctx.Done():
					w.Log.Info("job cancelled", zap.Int("worker", w.ID), zap.String("dubbing_id", job.DubbingID))
					continue
				default:
					w.processJob(ctx, job)
				}
			case <-ctx.Done():
				w.Log.Debug("stopping due to context cancellation", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job Job) {
	log := w.Log.With(zap.Int("worker", w.ID), zap.String("type", string(job.Type)), zap.String("dubbing_id", job.DubbingID))
	log.Info("processing job")

	var err error

	switch job.Type {
	case JobArchiveDub:
		err = w.Processor.ArchiveDub(ctx, job)
	default:
		err = fmt.Errorf("unknown job type: %s", job.Type)
	}

	if err != nil {
		log.Error("job failed", zap.Error(err))
	} else {
		log.Info("job succeeded")
	}
}
