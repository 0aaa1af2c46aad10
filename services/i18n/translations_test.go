package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"prolink/config"
	"prolink/database"
)

func newTestService(t *testing.T) *DefaultTranslationService {
	t.Helper()
	if !config.Loaded() {
		path := filepath.Join(t.TempDir(), "parameters.yaml")
		if err := os.WriteFile(path, []byte("SIM_LATENCY_MS: 1\n"), 0o644); err != nil {
			t.Fatalf("write parameters: %v", err)
		}
		if err := config.Load(path); err != nil {
			t.Fatalf("load parameters: %v", err)
		}
	}
	store, err := database.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	svc, err := NewDefaultTranslationService(store)
	if err != nil {
		t.Fatalf("NewDefaultTranslationService: %v", err)
	}
	return svc
}

func TestTranslationsUsesPrimarySubtag(t *testing.T) {
	svc := newTestService(t)
	labels, err := svc.Translations(context.Background(), "fr-CA")
	if err != nil {
		t.Fatalf("Translations: %v", err)
	}
	nav, ok := labels["nav"].(map[string]any)
	if !ok || nav["home"] != "Accueil" {
		t.Fatalf("expected the French bundle for fr-CA, got %v", labels["nav"])
	}
}

func TestTranslationsFallsBackToBaseLanguage(t *testing.T) {
	svc := newTestService(t)
	labels, err := svc.Translations(context.Background(), "de")
	if err != nil {
		t.Fatalf("Translations: %v", err)
	}
	nav, ok := labels["nav"].(map[string]any)
	if !ok || nav["home"] != "Home" {
		t.Fatalf("expected the base-language bundle for de, got %v", labels["nav"])
	}
}
