package schedules

import (
	"context"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const leaderLockTTL = 2 * time.Minute

// Worker pre-provisions the current and next week on a cron cadence, so the
// first booking request of a fresh week never pays the initialization cost.
// A redis leader lock keeps multi-replica deployments from running the job
// more than once per tick.
type Worker struct {
	log             *zap.Logger
	cronSpec        string
	grid            Grid
	locker          contracts.LockerService
	scheduleUsecase contracts.ScheduleUsecase
	cron            *cron.Cron
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewWorker(log *zap.Logger, cronSpec string, grid Grid, lockerService contracts.LockerService, scheduleUsecase contracts.ScheduleUsecase) *Worker {
	return &Worker{
		log:             log,
		cronSpec:        cronSpec,
		grid:            grid,
		locker:          lockerService,
		scheduleUsecase: scheduleUsecase,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("schedules.Worker: invalid cron spec, falling back to @daily", zap.String("cron_spec", w.cronSpec), zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.RedisKeyWorkerLeaderLock, leaderLockTTL)
	if err != nil {
		w.log.Warn("schedules.Worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("schedules.Worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyWorkerLeaderLock, lockValue)

	currentWeek := w.grid.WeekStart(time.Now())
	nextWeek := currentWeek.AddDate(0, 0, 7)

	for _, weekStart := range []time.Time{currentWeek, nextWeek} {
		ws := weekStart
		created, err := w.scheduleUsecase.InitializeWeek(ctx, &ws)
		if err != nil {
			w.log.Error("schedules.Worker: week initialization failed",
				zap.String(constvars.LoggingWeekStartKey, ws.Format(constvars.DateLayout)),
				zap.Error(err),
			)
			continue
		}
		w.log.Info("schedules.Worker: week provisioned",
			zap.String(constvars.LoggingWeekStartKey, ws.Format(constvars.DateLayout)),
			zap.Int(constvars.LoggingSlotsCreatedKey, created),
		)
	}
}
