package storage

// Backend is a bucketed key-value store. Values are raw bytes; JSONStore
// layers JSON encoding on top.
type Backend interface {
	// CreateBucket is idempotent
	CreateBucket(name []byte) error

	Put(bucket, key, value []byte) error
	// Get returns nil, nil for a missing key
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	ForEach(bucket []byte, fn func(k, v []byte) error) error

	Close() error
}
