package job

import (
	"context"
	log "log/slog"

	"Quill/internal/pkg/logger"
	"Quill/internal/service"

	"github.com/google/uuid"
)

// TaxonomyRefreshJob 定时预热分类/标签缓存
type TaxonomyRefreshJob struct {
	taxonomySvc service.TaxonomyService
}

func NewTaxonomyRefreshJob(taxonomySvc service.TaxonomyService) *TaxonomyRefreshJob {
	return &TaxonomyRefreshJob{
		taxonomySvc: taxonomySvc,
	}
}

func (s *TaxonomyRefreshJob) Run() {
	traceID := "job-taxonomy-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.taxonomySvc.Refresh(ctx); err != nil {
		log.ErrorContext(ctx, "taxonomy refresh failed", "err", err)
		return
	}
	log.InfoContext(ctx, "TaxonomyRefreshJob finished")
}
