// ABOUTME: Badger-backed local key-value store for app settings.
// ABOUTME: Persists unit preference, theme, and a per-install identifier.
package settings

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
)

const (
	keyUseMetric = "use_metric"
	keyDarkMode  = "dark_mode"
	keyInstallID = "install_id"
)

// Store holds app settings in a local badger database. It is an
// explicitly constructed, owned resource: open once, pass by reference,
// close on shutdown.
type Store struct {
	db *badger.DB
}

// Open opens or creates the settings store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the settings store.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// UseMetric reports whether weights are entered in kilograms.
// Defaults to true on a fresh install.
func (s *Store) UseMetric() (bool, error) {
	return s.getBool(keyUseMetric, true)
}

// SetUseMetric persists the unit preference.
func (s *Store) SetUseMetric(v bool) error {
	return s.setBool(keyUseMetric, v)
}

// DarkMode reports the theme preference. Defaults to true.
func (s *Store) DarkMode() (bool, error) {
	return s.getBool(keyDarkMode, true)
}

// SetDarkMode persists the theme preference.
func (s *Store) SetDarkMode(v bool) error {
	return s.setBool(keyDarkMode, v)
}

// InstallID returns the stable identifier for this install, generating
// and persisting one on first call.
func (s *Store) InstallID() (string, error) {
	var id string
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyInstallID))
		if err == nil {
			return item.Value(func(val []byte) error {
				id = string(val)
				return nil
			})
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		id = uuid.NewString()
		return txn.Set([]byte(keyInstallID), []byte(id))
	})
	if err != nil {
		return "", fmt.Errorf("install id: %w", err)
	}
	return id, nil
}

func (s *Store) getBool(key string, def bool) (bool, error) {
	v := def
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			v = len(val) == 1 && val[0] == '1'
			return nil
		})
	})
	if err != nil {
		return def, fmt.Errorf("read setting %s: %w", key, err)
	}
	return v, nil
}

func (s *Store) setBool(key string, v bool) error {
	val := []byte("0")
	if v {
		val = []byte("1")
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
	if err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}
