// Package settings exposes the user configuration consumed by the
// explanation pipeline. Values are read fresh per request so changes
// take effect immediately.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wordlens/wordlens-backend/internal/config"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) error
}

// Service merges the stored settings row with configuration defaults.
type Service struct {
	log  *slog.Logger
	repo settingsRepo
	cfg  config.PipelineConfig
}

// NewService creates a settings service.
func NewService(logger *slog.Logger, repo settingsRepo, cfg config.PipelineConfig) *Service {
	return &Service{
		log:  logger.With("service", "settings"),
		repo: repo,
		cfg:  cfg,
	}
}

// Snapshot returns the effective settings for one request: the stored
// row with empty fields filled from configuration defaults.
func (s *Service) Snapshot(ctx context.Context) (domain.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return s.withDefaults(stored), nil
}

// Get returns the stored settings with defaults applied, for display.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	return s.Snapshot(ctx)
}

// Update validates and persists new settings. An empty style or model
// falls back to the configured default on read, so both may be blank.
func (s *Service) Update(ctx context.Context, in domain.Settings) (domain.Settings, error) {
	in.APIKey = strings.TrimSpace(in.APIKey)
	if in.Style != "" && !in.Style.IsValid() {
		return domain.Settings{}, domain.NewValidationError("style", "must be one of plain, technical, simple")
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return domain.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	s.log.InfoContext(ctx, "settings updated",
		slog.Bool("has_key", in.HasKey()),
		slog.String("style", in.Style.String()),
		slog.Bool("prefer_free", in.PreferFree),
	)
	return s.withDefaults(in), nil
}

func (s *Service) withDefaults(in domain.Settings) domain.Settings {
	if in.Style == "" {
		in.Style = domain.ExplanationStyle(s.cfg.DefaultStyle)
	}
	if in.Model == "" {
		in.Model = s.cfg.DefaultModel
	}
	return in
}
