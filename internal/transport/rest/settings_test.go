package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

type mockSettingsService struct {
	getFn    func(ctx context.Context) (domain.Settings, error)
	updateFn func(ctx context.Context, s domain.Settings) (domain.Settings, error)
}

func (m *mockSettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return m.getFn(ctx)
}
func (m *mockSettingsService) Update(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	return m.updateFn(ctx, s)
}

func TestSettingsHandler_Get_NeverEchoesKey(t *testing.T) {
	t.Parallel()

	svc := &mockSettingsService{getFn: func(context.Context) (domain.Settings, error) {
		return domain.Settings{APIKey: "sk-secret", Style: domain.StylePlain, Model: "gpt-4o-mini", PreferFree: true}, nil
	}}
	handler := NewSettingsHandler(svc, newTestLogger())

	w := httptest.NewRecorder()
	handler.Get(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "sk-secret") {
		t.Fatal("response leaks the API key")
	}
	var resp settingsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.HasAPIKey || resp.Style != "plain" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSettingsHandler_Update_SetsKey(t *testing.T) {
	t.Parallel()

	var stored domain.Settings
	svc := &mockSettingsService{
		updateFn: func(_ context.Context, s domain.Settings) (domain.Settings, error) {
			stored = s
			return s, nil
		},
	}
	handler := NewSettingsHandler(svc, newTestLogger())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings",
		strings.NewReader(`{"apiKey":"sk-new","style":"simple","model":"gpt-4o","preferFree":false}`))
	handler.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if stored.APIKey != "sk-new" || stored.Style != domain.StyleSimple || stored.PreferFree {
		t.Errorf("stored = %+v", stored)
	}
	if strings.Contains(w.Body.String(), "sk-new") {
		t.Error("response leaks the API key")
	}
}

func TestSettingsHandler_Update_OmittedKeyKeepsStored(t *testing.T) {
	t.Parallel()

	var stored domain.Settings
	svc := &mockSettingsService{
		getFn: func(context.Context) (domain.Settings, error) {
			return domain.Settings{APIKey: "sk-existing", Style: domain.StylePlain, PreferFree: true}, nil
		},
		updateFn: func(_ context.Context, s domain.Settings) (domain.Settings, error) {
			stored = s
			return s, nil
		},
	}
	handler := NewSettingsHandler(svc, newTestLogger())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings",
		strings.NewReader(`{"style":"technical","preferFree":true}`))
	handler.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if stored.APIKey != "sk-existing" {
		t.Errorf("APIKey = %q, omitted key must keep the stored one", stored.APIKey)
	}
}

func TestSettingsHandler_Update_InvalidStyle(t *testing.T) {
	t.Parallel()

	svc := &mockSettingsService{
		updateFn: func(context.Context, domain.Settings) (domain.Settings, error) {
			return domain.Settings{}, domain.NewValidationError("style", "must be one of plain, technical, simple")
		},
	}
	handler := NewSettingsHandler(svc, newTestLogger())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings",
		strings.NewReader(`{"apiKey":"sk-x","style":"poetic"}`))
	handler.Update(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
