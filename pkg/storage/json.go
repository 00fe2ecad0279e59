package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBucketNotFound is returned when an operation targets a bucket that was never created
var ErrBucketNotFound = errors.New("bucket not found")

// JSONStore stores JSON-encoded values in a Backend
type JSONStore struct {
	backend Backend
}

func NewJSONStore(backend Backend) *JSONStore {
	return &JSONStore{backend: backend}
}

// PutJSON encodes v and stores it under bucket/key, creating the bucket if needed.
func (j *JSONStore) PutJSON(bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if err := j.backend.CreateBucket(bucket); err != nil {
		return err
	}
	return j.backend.Put(bucket, key, data)
}

// GetJSON decodes bucket/key into v. found is false when the bucket or key
// does not exist, in which case v is untouched.
func (j *JSONStore) GetJSON(bucket, key []byte, v any) (found bool, err error) {
	data, err := j.backend.Get(bucket, key)
	if errors.Is(err, ErrBucketNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return true, nil
}

func (j *JSONStore) Close() error {
	return j.backend.Close()
}
