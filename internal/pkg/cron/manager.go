package cron

import (
	log "log/slog"

	"Quill/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	taxonomyJob *job.TaxonomyRefreshJob
	refreshSpec string
}

func NewCronManager(taxonomyJob *job.TaxonomyRefreshJob, refreshSpec string) *Manager {
	if refreshSpec == "" {
		refreshSpec = "@every 10m"
	}
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		taxonomyJob: taxonomyJob,
		refreshSpec: refreshSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.refreshSpec, s.taxonomyJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
