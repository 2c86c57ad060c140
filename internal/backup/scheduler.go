package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/larkstore/larkstore/internal/logging"
)

// Scheduler runs periodic backups. One Scheduler drives one Service.
type Scheduler struct {
	svc    *Service
	logger logging.Logger
	cron   *cron.Cron
}

func NewScheduler(svc *Service, logger logging.Logger) *Scheduler {
	return &Scheduler{
		svc:    svc,
		logger: logger.With("module", "backup_scheduler"),
		cron:   cron.New(),
	}
}

// Start schedules a backup every interval and launches the timer. Failures
// are logged and the schedule keeps running; the next tick tries again.
func (s *Scheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("invalid backup interval %v", interval)
	}

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		ctx := context.Background()
		info, err := s.svc.Create(ctx)
		if err != nil {
			s.logger.Error(ctx, "scheduled backup failed", "error", err)
			return
		}
		s.logger.Info(ctx, "scheduled backup completed", "key", info.Key, "keys", info.Keys)
	})
	if err != nil {
		return fmt.Errorf("scheduling backups: %w", err)
	}

	s.cron.Start()
	s.logger.Info(context.Background(), "backup schedule started", "interval", interval.String())
	return nil
}

// Stop halts the schedule and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
