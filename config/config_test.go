package config

import (
	"os"
	"path/filepath"
	"testing"

	"prolink/utils"
)

func TestLoadFailsWithoutDocument(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "parameters.yaml"))
	if utils.CodeOf(err) != utils.CodeConfiguration {
		t.Fatalf("expected configuration error for missing document, got %v", err)
	}
	if Loaded() {
		t.Fatal("gate must not open after a failed load")
	}
}

func TestLoadMergesEntryDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parameters.yaml")
	doc := "APP_PORT: \"9090\"\ncollections:\n  users: app_users\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write parameters: %v", err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !Loaded() {
		t.Fatal("gate must open after a successful load")
	}
	if AppConfig.AppPort != "9090" {
		t.Fatalf("expected explicit APP_PORT to win, got %q", AppConfig.AppPort)
	}
	if AppConfig.Collections.Users != "app_users" {
		t.Fatalf("expected remapped users collection, got %q", AppConfig.Collections.Users)
	}
	if AppConfig.Collections.Bookings != "bookings" {
		t.Fatalf("expected unspecified entry to fall back to entity name, got %q", AppConfig.Collections.Bookings)
	}
	if AppConfig.ETAInitial != 15 {
		t.Fatalf("expected default ETA initial of 15, got %d", AppConfig.ETAInitial)
	}
}
