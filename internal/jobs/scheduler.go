package jobs

import (
	"context"
	"folio/internal/jobs/interfaces"
	"folio/internal/providers"
	"folio/internal/services"
	"folio/internal/structures"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler runs the periodic content refresh and store backup.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	content     services.ContentServiceInterface
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	if interval := s.config.Content.RefreshInterval; interval > 0 {
		s.cron.AddFunc(gron.Every(interval), func() {
			s.logger.Debugf(providers.TypeApp, "Refreshing content...")
			s.content.Refetch(context.Background())
		})
		s.logger.Infof(providers.TypeApp, "Content refresh every %s", interval)
	}

	if s.config.Backup.Enabled && s.config.Backup.Interval > 0 {
		s.cron.AddFunc(gron.Every(s.config.Backup.Interval), func() {
			if err := s.Persist(); err == nil {
				s.logger.Infof(providers.TypeApp, "Persisted store to file %s", s.config.Backup.FilePath)
			}
		})
		s.logger.Infof(providers.TypeApp, "Store backup every %s", s.config.Backup.Interval)
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Persist writes a backup now. It is a no-op when backups are disabled.
func (s *Scheduler) Persist() error {
	if !s.config.Backup.Enabled {
		return nil
	}
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	err := s.fileManager.SaveToFile(context.Background(), s.config.Backup.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting store: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, content services.ContentServiceInterface, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		content:     content,
		fileManager: fileManager,
	}
}
