package user

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"prolink/config"
	"prolink/database"
	userRepo "prolink/database/repository/user"
	"prolink/utils"
)

func newTestService(t *testing.T) (*DefaultUserService, *userRepo.MemoryUserRepo) {
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
	repo, err := userRepo.NewMemoryUserRepo(store)
	if err != nil {
		t.Fatalf("NewMemoryUserRepo: %v", err)
	}
	return &DefaultUserService{Repo: repo}, repo
}

func TestRegisterThenLoginEndToEnd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegistrationData{
		Name: "Alice", Email: "a@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.ID == "" {
		t.Fatal("expected a generated id")
	}
	if registered.PasswordHash != "" {
		t.Fatal("credential must never be returned from Register")
	}
	if registered.Location.Lat == 0 && registered.Location.Lon == 0 {
		t.Fatal("expected a default seeded location")
	}
	if registered.AvatarURL == "" {
		t.Fatal("expected a generated avatar reference")
	}

	if _, err := svc.Login(ctx, "a@x.com", "wrong"); !utils.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for wrong credential, got %v", err)
	}

	authed, err := svc.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if authed.PasswordHash != "" {
		t.Fatal("credential must never be returned from Login")
	}
	if authed.ID != registered.ID {
		t.Fatalf("expected the registered identity back, got %q", authed.ID)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegistrationData{Name: "Bob", Email: "b@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	before, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	if _, err := svc.Register(ctx, RegistrationData{Name: "Bob II", Email: "b@x.com", Password: "other99"}); !utils.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	after, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after != before {
		t.Fatalf("user count changed on conflicting register: %d -> %d", before, after)
	}
}

func TestLoginUnknownEmailIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Login(context.Background(), "nobody@x.com", "whatever"); !utils.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown email, got %v", err)
	}
}

func TestResolveSessionAbsentIsNil(t *testing.T) {
	svc, _ := newTestService(t)
	resolved, err := svc.ResolveSession(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("ResolveSession must not error on absence: %v", err)
	}
	if resolved != nil {
		t.Fatalf("expected nil user for absent id, got %+v", resolved)
	}
}

func TestLoginSurfacesStoreOutage(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegistrationData{Name: "Cat", Email: "c@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	repo.Collection().SetUnavailable(true)
	defer repo.Collection().SetUnavailable(false)
	if _, err := svc.Login(ctx, "c@x.com", "secret1"); !utils.IsUnavailable(err) {
		t.Fatalf("expected unavailable during injected outage, got %v", err)
	}
}
