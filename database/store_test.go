package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prolink/config"
	"prolink/models"
	"prolink/utils"
)

const testParams = `SIM_LATENCY_MS: 25
collections:
  users: app_users
`

func loadTestConfig(t *testing.T) {
	t.Helper()
	if config.Loaded() {
		return
	}
	path := filepath.Join(t.TempDir(), "parameters.yaml")
	if err := os.WriteFile(path, []byte(testParams), 0o644); err != nil {
		t.Fatalf("write parameters: %v", err)
	}
	if err := config.Load(path); err != nil {
		t.Fatalf("load parameters: %v", err)
	}
}

// Runs first: the store must refuse to exist before the configuration
// gate has completed.
func TestNewStoreRequiresConfigGate(t *testing.T) {
	if config.Loaded() {
		t.Skip("configuration already loaded in this process")
	}
	if _, err := NewStore(); utils.CodeOf(err) != utils.CodeConfiguration {
		t.Fatalf("expected configuration error before gate, got %v", err)
	}
}

func TestResolveUsesConfiguredBackingName(t *testing.T) {
	loadTestConfig(t)
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	col, err := store.Resolve(EntityUsers)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if col.Name() != "app_users" {
		t.Fatalf("expected remapped collection name app_users, got %q", col.Name())
	}
	if _, err := store.Resolve("payments"); utils.CodeOf(err) != utils.CodeConfiguration {
		t.Fatalf("expected configuration error for unbound entity, got %v", err)
	}
}

func TestOperationsInjectLatency(t *testing.T) {
	loadTestConfig(t)
	store, _ := NewStore()
	col, _ := store.Resolve(EntityUsers)

	begin := time.Now()
	if err := col.Append(context.Background(), models.User{ID: "u1"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if elapsed := time.Since(begin); elapsed < 25*time.Millisecond {
		t.Fatalf("expected simulated latency of at least 25ms, took %v", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := col.FindOne(ctx, func(any) bool { return true }); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation during simulated delay, got %v", err)
	}
}

func TestUnavailableInjection(t *testing.T) {
	loadTestConfig(t)
	store, _ := NewStore()
	col, _ := store.Resolve(EntityProfessionals)

	col.SetUnavailable(true)
	if _, err := col.FindAll(context.Background(), nil); !utils.IsUnavailable(err) {
		t.Fatalf("expected unavailable error while outage is injected, got %v", err)
	}
	col.SetUnavailable(false)
	if _, err := col.FindAll(context.Background(), nil); err != nil {
		t.Fatalf("expected recovery after outage cleared, got %v", err)
	}
}

func TestSeedLoadsDemoDataset(t *testing.T) {
	loadTestConfig(t)
	store, _ := NewStore()
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	counts := map[string]int{
		EntityUsers:         1,
		EntityProfessionals: 6,
		EntityBookings:      4,
		EntityMessages:      3,
		EntityConversations: 3,
		EntityTranslations:  3,
	}
	ctx := context.Background()
	for logical, want := range counts {
		col, err := store.Resolve(logical)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", logical, err)
		}
		got, err := col.Count(ctx)
		if err != nil {
			t.Fatalf("Count(%s): %v", logical, err)
		}
		if got != want {
			t.Fatalf("expected %d seeded %s, got %d", want, logical, got)
		}
	}

	convos, _ := store.Resolve(EntityConversations)
	doc, err := convos.FindOne(ctx, func(d any) bool {
		c, ok := d.(models.Conversation)
		return ok && c.Participant.Kind == models.ParticipantAssistant
	})
	if err != nil || doc == nil {
		t.Fatalf("expected a seeded assistant conversation, got doc=%v err=%v", doc, err)
	}
	if doc.(models.Conversation).Participant.ID != models.AssistantID {
		t.Fatalf("assistant participant carries wrong id: %q", doc.(models.Conversation).Participant.ID)
	}
}
