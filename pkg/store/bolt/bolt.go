// Package bolt implements store.Store using bbolt (embedded B+ tree).
// All keys live in a single named bucket; every operation runs in its
// own transaction, so single operations are atomic and
// crash-consistent. Values are encoded as MessagePack maps.
package bolt

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"pkv/internal/logging"
	"pkv/pkg/store"
)

var bucket = []byte("pkv")

// Store wraps one bbolt database file.
type Store struct {
	db *bolt.DB
}

// Open creates or opens a bbolt database at the given path and
// ensures the key-value bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	logging.For("store.bolt").Info("opened bolt store", "path", path)
	return &Store{db: db}, nil
}

func (s *Store) Set(key string, value any) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncode, err)
	}
	return s.put(key, data)
}

func (s *Store) SetString(key, value string) error {
	return s.Set(key, value)
}

func (s *Store) put(key string, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("writing value: %w", err)
	}
	return nil
}

func (s *Store) Get(key string, dest any) error {
	_, err := s.get(key, func(data []byte) (any, error) {
		if err := msgpack.Unmarshal(data, dest); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrDecode, err)
		}
		return nil, nil
	})
	return err
}

func (s *Store) GetWith(key string, decode store.DecodeFunc) (any, error) {
	return s.get(key, decode)
}

// get runs decode against the stored bytes inside the read
// transaction, so decode must not retain the slice.
func (s *Store) get(key string, decode store.DecodeFunc) (any, error) {
	var value any
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(key))
		if data == nil {
			return store.ErrNotFound
		}
		var err error
		value, err = decode(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) Remove(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b.Get([]byte(key)) == nil {
			return store.ErrNotFound
		}
		return b.Delete([]byte(key))
	})
}

// Clear drops and recreates the bucket in one write transaction.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucket); err != nil {
			return fmt.Errorf("dropping bucket: %w", err)
		}
		_, err := tx.CreateBucket(bucket)
		return err
	})
}

func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
