package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/tasksync/internal/client/storage"
)

// GetLong returns the int64 stored under key or def if there is none
func (s *Storage) GetLong(ctx context.Context, key string, def int64) (int64, error) {
	if s.closed.Load() {
		return def, storage.ErrStorageClosed
	}

	value := def
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		raw := bucket.Get([]byte(key))
		if raw == nil {
			return nil
		}
		if len(raw) != 8 {
			return fmt.Errorf("metadata %q has invalid length %d", key, len(raw))
		}

		// Конвертируем bytes в int64
		value = int64(binary.BigEndian.Uint64(raw))
		return nil
	})
	if err != nil {
		return def, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// SetLong stores value under key
func (s *Storage) SetLong(ctx context.Context, key string, value int64) error {
	if s.closed.Load() {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		raw := make([]byte, 8)
		binary.BigEndian.PutUint64(raw, uint64(value))

		if err := bucket.Put([]byte(key), raw); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}

		return nil
	})
}
