package cron

import (
	"context"
	"core/models"
	"core/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSnapshotSchedule runs at minute 0 of every hour.
const DefaultSnapshotSchedule = "0 0 * * * *"

// snapshotTimeout bounds one snapshot job, store reads included.
const snapshotTimeout = 30 * time.Second

type SnapshotTaker interface {
	TakeSnapshot(ctx context.Context) (*models.StandingsSnapshot, error)
}

type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	snapshots SnapshotTaker
}

func NewScheduler(snapshots SnapshotTaker, schedule string) *Scheduler {
	if schedule == "" {
		schedule = DefaultSnapshotSchedule
	}

	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:      c,
		schedule:  schedule,
		snapshots: snapshots,
	}
}

// Start registers the standings snapshot job and starts the scheduler.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	_, err := s.cron.AddFunc(s.schedule, s.runSnapshot)
	if err != nil {
		log.Printf("Error scheduling standings snapshot job: %v", err)
		return err
	}

	s.cron.Start()
	log.Printf("Cron scheduler started (snapshot schedule %q)", s.schedule)

	return nil
}

// Stop gracefully shuts down the scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Cron scheduler stopped")
}

// RunNow takes a snapshot immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.runSnapshot()
}

func (s *Scheduler) runSnapshot() {
	log.Println("Running standings snapshot job...")

	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	snapshot, err := s.snapshots.TakeSnapshot(ctx)
	if err != nil {
		log.Printf("Error during standings snapshot: %v", err)
		return
	}

	log.Printf("Standings snapshot %s saved (round %d, %d players)", snapshot.ID, snapshot.Round, len(snapshot.Standings))
}

var _ SnapshotTaker = (*services.SnapshotService)(nil)
