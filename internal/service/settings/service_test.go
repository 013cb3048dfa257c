package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/wordlens/wordlens-backend/internal/config"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

type mockRepo struct {
	getFn    func(ctx context.Context) (domain.Settings, error)
	updateFn func(ctx context.Context, s domain.Settings) error
}

func (m *mockRepo) Get(ctx context.Context) (domain.Settings, error) {
	return m.getFn(ctx)
}
func (m *mockRepo) Update(ctx context.Context, s domain.Settings) error {
	return m.updateFn(ctx, s)
}

func newTestService(repo *mockRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, repo, config.PipelineConfig{
		DefaultStyle: "plain",
		DefaultModel: "gpt-4o-mini",
	})
}

func TestService_Snapshot_AppliesDefaults(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{getFn: func(context.Context) (domain.Settings, error) {
		return domain.Settings{APIKey: "sk-test", PreferFree: true}, nil
	}}
	svc := newTestService(repo)

	got, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if got.Style != domain.StylePlain {
		t.Errorf("Style = %q, want default", got.Style)
	}
	if got.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want default", got.Model)
	}
	if got.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, stored value must survive", got.APIKey)
	}
}

func TestService_Snapshot_KeepsStoredValues(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{getFn: func(context.Context) (domain.Settings, error) {
		return domain.Settings{Style: domain.StyleTechnical, Model: "gpt-4o"}, nil
	}}
	svc := newTestService(repo)

	got, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if got.Style != domain.StyleTechnical || got.Model != "gpt-4o" {
		t.Errorf("Snapshot() = %+v, stored values must win over defaults", got)
	}
}

func TestService_Update_TrimsKey(t *testing.T) {
	t.Parallel()

	var stored domain.Settings
	repo := &mockRepo{updateFn: func(_ context.Context, s domain.Settings) error {
		stored = s
		return nil
	}}
	svc := newTestService(repo)

	got, err := svc.Update(context.Background(), domain.Settings{APIKey: "  sk-new  ", PreferFree: true})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if stored.APIKey != "sk-new" {
		t.Errorf("stored APIKey = %q, want trimmed", stored.APIKey)
	}
	if got.Style != domain.StylePlain {
		t.Errorf("returned Style = %q, want default applied", got.Style)
	}
}

func TestService_Update_InvalidStyle(t *testing.T) {
	t.Parallel()

	repo := &mockRepo{updateFn: func(context.Context, domain.Settings) error {
		t.Error("Update must not reach the repo on invalid style")
		return nil
	}}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), domain.Settings{Style: "poetic"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestService_Snapshot_RepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection refused")
	repo := &mockRepo{getFn: func(context.Context) (domain.Settings, error) {
		return domain.Settings{}, repoErr
	}}
	svc := newTestService(repo)

	if _, err := svc.Snapshot(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("error = %v, want wrapped repo error", err)
	}
}
