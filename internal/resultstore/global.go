package resultstore

import (
	"fmt"
	"sync"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/schema"
)

// Global store instance for main logic.
var (
	store     contract.ResultStore
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStore initializes the global result store. Safe to call more than
// once; only the first call opens a connection.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error
	initOnce.Do(func() {
		s, err := NewStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize result store: %w", err)
			return
		}
		store = s
	})
	return initErr
}

// GetStore returns the global result store. It is nil until InitStore runs.
func GetStore() contract.ResultStore {
	return store
}

// CloseStore closes the global result store exactly once.
func CloseStore() {
	closeOnce.Do(func() {
		if store != nil {
			if err := store.Close(); err != nil {
				contract.LogWarn("Could not close result store", err)
			}
		}
	})
}
