package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/repository"
	"github.com/robfig/cron/v3"
	"github.com/samber/oops"
)

// Deliverer sends the ad to a single channel. An error means the channel did
// not receive it.
type Deliverer interface {
	Deliver(ctx context.Context, channelID string, ad domain.Ad) error
}

// Scheduler pushes the current ad to every channel on each activation of its
// schedule while broadcasting is not paused.
type Scheduler struct {
	repo      repository.Repository
	control   *domain.Control
	deliverer Deliverer
	schedule  cron.Schedule
	timeout   time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewScheduler creates a scheduler. timeout bounds every single delivery.
func NewScheduler(repo repository.Repository, control *domain.Control, deliverer Deliverer, schedule cron.Schedule, timeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		repo:      repo,
		control:   control,
		deliverer: deliverer,
		schedule:  schedule,
		timeout:   timeout,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start runs the broadcast loop in the background until ctx is done or Stop is called
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Run(ctx)
	}()
}

// Stop cancels the loop, including an in-flight tick, and waits for it to return
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

// Shutdown stops the loop when the DI container shuts down
func (s *Scheduler) Shutdown() {
	s.Stop()
}

// Run ticks once immediately, then on every schedule activation. Pausing is
// observed at the start of the next tick.
func (s *Scheduler) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	s.Tick(ctx)

	for {
		next := s.schedule.Next(time.Now())
		if next.IsZero() {
			slog.Warn("Broadcast schedule has no future activation, loop idle until shutdown")
			<-ctx.Done()
			return
		}

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one broadcast pass. Channel list and ad are read once; a
// failing channel is logged and skipped, never retried within the tick.
func (s *Scheduler) Tick(ctx context.Context) domain.TickReport {
	report := domain.TickReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Paused:    s.control.Paused(),
	}

	if report.Paused {
		slog.Debug("Broadcast paused, skipping tick", "tick", report.ID)
		return report
	}

	channels := s.repo.LoadChannels(ctx)
	ad := s.repo.LoadAd(ctx)
	report.Channels = len(channels)

	if ad.IsEmpty() {
		slog.Debug("No ad configured, skipping tick", "tick", report.ID, "channels", len(channels))
		return report
	}
	if err := ad.CheckMarkup(); err != nil {
		slog.Warn("Ad text is not valid HTML, channels will likely reject it", "tick", report.ID, "error", err)
	}

	for _, channel := range channels {
		if ctx.Err() != nil {
			slog.Warn("Tick interrupted by shutdown", "tick", report.ID, "sent", report.Sent)
			break
		}

		if err := s.deliver(ctx, channel, ad); err != nil {
			report.Failed = append(report.Failed, channel)
			slog.Error("Failed to deliver ad", "tick", report.ID, "channel", channel, "kind", ad.Kind(), "error", err)
			sentry.CaptureException(err)
			continue
		}
		report.Sent++
	}

	report.Duration = time.Since(report.StartedAt)
	slog.Info("Broadcast tick finished",
		"tick", report.ID,
		"channels", report.Channels,
		"sent", report.Sent,
		"failed", len(report.Failed),
		"duration", report.Duration)

	return report
}

func (s *Scheduler) deliver(ctx context.Context, channel string, ad domain.Ad) (err error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = oops.With("channel", channel).Errorf("delivery panicked: %v", r)
		}
	}()

	if err := s.deliverer.Deliver(ctx, channel, ad); err != nil {
		return oops.With("channel", channel).Wrap(err)
	}
	return nil
}
