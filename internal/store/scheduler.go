package store

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"aurad/internal/models"
	"aurad/internal/providers"
	"aurad/internal/store/interfaces"
	"aurad/internal/structures"
)

// Scheduler owns the record-set maintenance lifecycle: schema migration at
// startup, periodic feeding-log pruning, and a final mascot flush on
// shutdown.
type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	repo     RepositoryInterface
	migrator *Migrator
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.PruneInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		entries := s.repo.FeedingLog()
		cutoff := models.CutoffString(time.Now(), models.FeedingLogRetentionDays)
		s.repo.SaveFeedingLog(entries, cutoff)
		s.logger.Infof(providers.TypeApp, "Pruned feeding log to entries since %s", cutoff)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore runs the one-time schema migration before the API starts
// serving.
func (s *Scheduler) Restore() error {
	first := s.migrator.MigrateIfNeeded(time.Now())
	s.logger.Infof(providers.TypeApp, "Record set ready (first visit: %t)", first)
	return nil
}

// Persist flushes the active mascot's counters onto its collection entry.
// The flush direction matters: the mascot is the denormalized copy.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	mascot := s.repo.Mascot()
	if mascot == nil {
		return nil
	}
	col := s.repo.Collection()
	if entry := col.Entry(mascot.PersonaID); entry != nil {
		entry.Experience = mascot.Experience
		entry.TotalFeedings = mascot.TotalFeedings
		s.repo.SaveCollection(col)
		s.logger.Infof(providers.TypeApp, "Flushed mascot counters to collection entry %d", mascot.PersonaID)
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, repo RepositoryInterface, migrator *Migrator) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		repo:     repo,
		migrator: migrator,
	}
}
