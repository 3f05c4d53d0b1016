package session

import (
	"reflect"
	"testing"
	"time"

	"pension-admin/internal/adapters/localstore"
	"pension-admin/internal/core/domain"
)

func newTestStorage(t *testing.T) *localstore.Store {
	t.Helper()
	storage, err := localstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	return storage
}

func TestSetIdentityInitializeRoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	user := &domain.User{
		ID:        12,
		Email:     "admin@fund.example",
		FirstName: "Ada",
		LastName:  "Okoro",
		Role:      domain.RoleAdmin,
		CreatedAt: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	first := New(storage, nil)
	if err := first.SetIdentity(user); err != nil {
		t.Fatalf("set identity failed: %v", err)
	}

	// A fresh store over the same storage simulates a new process.
	second := New(storage, nil)
	second.Initialize()

	restored := second.Current()
	if restored == nil {
		t.Fatal("expected identity after initialize, got nil")
	}
	if !reflect.DeepEqual(restored, user) {
		t.Errorf("expected identity %+v, got %+v", user, restored)
	}
}

func TestInitializeWithMalformedData(t *testing.T) {
	storage := newTestStorage(t)
	if err := storage.Set(localstore.KeyUser, "{definitely-not-json"); err != nil {
		t.Fatalf("seed malformed user: %v", err)
	}

	store := New(storage, nil)
	store.Initialize()

	if store.Current() != nil {
		t.Error("expected absent identity for malformed stored data")
	}
	if store.IsAuthenticated() {
		t.Error("expected unauthenticated for malformed stored data")
	}
}

func TestInitializeWithEmptyStorage(t *testing.T) {
	store := New(newTestStorage(t), nil)
	store.Initialize()

	if store.IsAuthenticated() {
		t.Error("expected unauthenticated on empty storage")
	}
}

func TestSetIdentityNilClears(t *testing.T) {
	storage := newTestStorage(t)
	store := New(storage, nil)

	store.SetIdentity(&domain.User{ID: 1, Role: domain.RoleManager})
	if !store.IsAuthenticated() {
		t.Fatal("expected authenticated after set")
	}

	if err := store.SetIdentity(nil); err != nil {
		t.Fatalf("clearing identity failed: %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("expected unauthenticated after nil identity")
	}

	fresh := New(storage, nil)
	fresh.Initialize()
	if fresh.Current() != nil {
		t.Error("expected cleared identity to be gone from storage too")
	}
}

func TestHasRole(t *testing.T) {
	store := New(newTestStorage(t), nil)
	store.SetIdentity(&domain.User{ID: 1, Role: domain.RoleManager})

	if !store.HasRole(domain.RoleManager) {
		t.Error("expected HasRole(MANAGER) true")
	}
	if store.HasRole(domain.RoleAdmin) {
		t.Error("expected HasRole(ADMIN) false")
	}
}

func TestLogoutClearsEverythingAndNavigates(t *testing.T) {
	storage := newTestStorage(t)
	storage.Set(localstore.KeyAuthToken, "tok")

	navigations := 0
	store := New(storage, func() { navigations++ })
	store.SetIdentity(&domain.User{ID: 1, Role: domain.RoleAdmin})

	if err := store.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if store.IsAuthenticated() {
		t.Error("expected unauthenticated after logout")
	}
	if _, ok := store.Credential(); ok {
		t.Error("expected credential gone after logout")
	}
	if navigations != 1 {
		t.Errorf("expected one navigation, got %d", navigations)
	}
}

func TestCredential(t *testing.T) {
	storage := newTestStorage(t)
	store := New(storage, nil)

	if _, ok := store.Credential(); ok {
		t.Error("expected no credential on empty storage")
	}

	storage.Set(localstore.KeyAuthToken, "tok-9")
	token, ok := store.Credential()
	if !ok || token != "tok-9" {
		t.Errorf("expected credential 'tok-9', got %q (ok=%v)", token, ok)
	}
}
