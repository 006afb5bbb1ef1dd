package balancete

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// StoreKey is the fixed key under which the dashboard is persisted.
const StoreKey = "balancete_dashboard_data"

// KV is a minimal key-value storage backend.
type KV interface {
	// Get returns the value for key, ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set overwrites the value for key.
	Set(key string, value []byte) error
	// Delete removes key, deleting an absent key is not an error.
	Delete(key string) error
}

// Store persists a single DashboardData in a KV.
//
// It keeps no copy of the data, every call goes to the backend.
// The stored format is the JSON encoding of DashboardData, there is no
// versioning: a value written by an incompatible version is either decoded
// as is or discarded.
type Store struct {
	kv  KV
	log logrus.FieldLogger
}

// NewStore returns a Store on top of kv.
func NewStore(kv KV, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{kv: kv, log: log}
}

// Save overwrites the stored dashboard with data.
func (s *Store) Save(data *DashboardData) error {
	content, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cannot encode dashboard: %w", err)
	}
	if err := s.kv.Set(StoreKey, content); err != nil {
		return fmt.Errorf("cannot save dashboard: %w", err)
	}
	return nil
}

// Load returns the stored dashboard, or nil if there is none.
//
// A stored value that cannot be read or decoded is logged and treated as absent.
func (s *Store) Load() *DashboardData {
	content, ok, err := s.kv.Get(StoreKey)
	if err != nil {
		s.log.WithError(err).Warn("cannot read stored dashboard, starting without data")
		return nil
	}
	if !ok {
		return nil
	}
	var data *DashboardData
	if err := json.Unmarshal(content, &data); err != nil {
		s.log.WithError(err).Warn("stored dashboard is malformed, discarding it")
		return nil
	}
	return data
}

// Clear removes the stored dashboard. It is idempotent.
func (s *Store) Clear() error {
	if err := s.kv.Delete(StoreKey); err != nil {
		return fmt.Errorf("cannot clear dashboard: %w", err)
	}
	return nil
}
