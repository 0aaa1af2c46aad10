package tracking

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prolink/config"
	"prolink/database"
	providerRepo "prolink/database/repository/provider"
	"prolink/utils"
)

const stepMax = 0.00025

func newTestService(t *testing.T) *DefaultTrackingService {
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
	repo, err := providerRepo.NewMemoryProviderRepo(store)
	if err != nil {
		t.Fatalf("NewMemoryProviderRepo: %v", err)
	}
	return &DefaultTrackingService{
		Providers: repo,
		Opts: Options{
			Tick:       10 * time.Millisecond,
			StepMax:    stepMax,
			ETATick:    10 * time.Millisecond,
			ETAInitial: 15,
		},
	}
}

func TestOpenStreamUnknownProfessional(t *testing.T) {
	svc := newTestService(t)
	session, err := svc.OpenStream(context.Background(), "no-such-pro")
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown professional, got %v", err)
	}
	if session != nil {
		t.Fatal("failed open must not allocate a session")
	}
}

func TestStreamNeverTeleports(t *testing.T) {
	svc := newTestService(t)
	session, err := svc.OpenStream(context.Background(), "pro1")
	if err != nil {
		t.Fatalf("OpenStream: %v", err)
	}

	var updates []struct{ lat, lon float64 }
	for len(updates) < 3 {
		loc, ok := <-session.Locations
		if !ok {
			t.Fatal("stream closed before three updates")
		}
		updates = append(updates, struct{ lat, lon float64 }{loc.Lat, loc.Lon})
	}
	session.Cancel()

	const eps = 1e-12
	for i := 1; i < len(updates); i++ {
		dLat := math.Abs(updates[i].lat - updates[i-1].lat)
		dLon := math.Abs(updates[i].lon - updates[i-1].lon)
		if dLat > stepMax+eps || dLon > stepMax+eps {
			t.Fatalf("update %d teleported: dLat=%v dLon=%v exceeds bound %v", i, dLat, dLon, stepMax)
		}
	}
}

func TestCancelStopsDeliveryAndIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	session, err := svc.OpenStream(context.Background(), "pro1")
	if err != nil {
		t.Fatalf("OpenStream: %v", err)
	}

	// Take one update so the producer is demonstrably live.
	if _, ok := <-session.Locations; !ok {
		t.Fatal("expected a first update")
	}

	session.Cancel()
	session.Cancel() // double-cancel must not panic or block

	// After Cancel returns, both feeds are closed; waiting one more tick
	// interval must deliver nothing.
	deadline := time.After(30 * time.Millisecond)
	for {
		select {
		case loc, ok := <-session.Locations:
			if ok {
				t.Fatalf("location %+v delivered after cancel returned", loc)
			}
			session.Locations = nil
		case eta, ok := <-session.ETA:
			if ok {
				t.Fatalf("eta %d delivered after cancel returned", eta)
			}
			session.ETA = nil
		case <-deadline:
			return
		}
		if session.Locations == nil && session.ETA == nil {
			return
		}
	}
}

func TestETADecrementsToZeroAndHolds(t *testing.T) {
	svc := newTestService(t)
	session, err := svc.OpenStream(context.Background(), "pro2")
	if err != nil {
		t.Fatalf("OpenStream: %v", err)
	}
	defer session.Cancel()

	prev := 15
	for i := 0; i < 15; i++ {
		eta, ok := <-session.ETA
		if !ok {
			t.Fatal("eta feed closed early")
		}
		if eta < 0 {
			t.Fatalf("eta went negative: %d", eta)
		}
		if eta > prev {
			t.Fatalf("eta increased: %d after %d", eta, prev)
		}
		prev = eta
	}
	if prev != 0 {
		t.Fatalf("expected eta to reach exactly 0 after 15 ticks, got %d", prev)
	}
	for i := 0; i < 2; i++ {
		if eta := <-session.ETA; eta != 0 {
			t.Fatalf("eta left the floor: %d", eta)
		}
	}
}
