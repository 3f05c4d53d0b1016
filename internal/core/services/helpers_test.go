package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pension-admin/internal/adapters/localstore"
	"pension-admin/internal/adapters/rest"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return rest.New(server.URL, 5*time.Second)
}

func newTestStorage(t *testing.T) *localstore.Store {
	t.Helper()
	storage, err := localstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	return storage
}
