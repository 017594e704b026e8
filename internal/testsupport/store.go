package testsupport

import (
	"testing"

	"crosscheck/internal/config"
	"crosscheck/internal/lookupcache"
)

// MustOpenStore opens a lookupcache.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config, opts ...lookupcache.Option) *lookupcache.Store {
	t.Helper()

	store, err := lookupcache.Open(cfg, opts...)
	if err != nil {
		t.Fatalf("lookupcache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
