package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketSession = []byte("session")

var (
	keySessionID = []byte("session_id")
	keyUsername  = []byte("username")
)

// Store persists the session credential across restarts. It is the sole
// piece of durable local state the client keeps; sign-out wipes it.
type Store struct {
	db *bolt.DB
}

// NewStore opens (creating if needed) the session database under dataDir
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "screenings.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the persisted credential. ok is false when no session has
// been saved.
func (s *Store) Load() (id, username string, ok bool) {
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b == nil {
			return nil
		}
		if v := b.Get(keySessionID); v != nil {
			id = string(v)
		}
		if v := b.Get(keyUsername); v != nil {
			username = string(v)
		}
		return nil
	})
	return id, username, id != ""
}

// Save persists a freshly exchanged credential
func (s *Store) Save(id, username string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put(keySessionID, []byte(id)); err != nil {
			return err
		}
		return b.Put(keyUsername, []byte(username))
	})
}

// Clear wipes the persisted credential on sign-out
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b == nil {
			return nil
		}
		if err := b.Delete(keySessionID); err != nil {
			return err
		}
		return b.Delete(keyUsername)
	})
}
