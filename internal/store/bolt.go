package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketState = "state"

// Bolt is a bbolt-backed store.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens or creates the database at path.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketState))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Load returns the last saved result.
func (s *Bolt) Load() (string, error) {
	var result string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketState)).Get([]byte(lastResult)); v != nil {
			result = string(v)
		}
		return nil
	})
	return result, err
}

// Save records result.
func (s *Bolt) Save(result string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketState)).Put([]byte(lastResult), []byte(result))
	})
}

// Close closes the database.
func (s *Bolt) Close() error {
	return s.db.Close()
}
