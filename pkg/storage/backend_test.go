package storage

import (
	"bytes"
	"errors"
	"testing"
)

var localeBucket = []byte("locales")

// backendTestSuite runs the shared contract against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("CreateBucketIdempotent", func(t *testing.T) {
		backend := newBackend(t)

		if err := backend.CreateBucket(localeBucket); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}
		if err := backend.Put(localeBucket, []byte("en_US/address"), []byte("{}")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := backend.CreateBucket(localeBucket); err != nil {
			t.Fatalf("CreateBucket should be idempotent: %v", err)
		}

		got, _ := backend.Get(localeBucket, []byte("en_US/address"))
		if got == nil {
			t.Error("Re-creating a bucket must not drop its contents")
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(localeBucket)

		value := []byte(`{"cityPrefix":["North"]}`)
		if err := backend.Put(localeBucket, []byte("en_US/address"), value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := backend.Get(localeBucket, []byte("en_US/address"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		got, err = backend.Get(localeBucket, []byte("fr_FR/address"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for a missing key, got %s", got)
		}
	})

	t.Run("ValueIsCopied", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(localeBucket)

		value := []byte("original")
		backend.Put(localeBucket, []byte("k"), value)
		value[0] = 'X'

		got, _ := backend.Get(localeBucket, []byte("k"))
		if string(got) != "original" {
			t.Errorf("stored value changed with caller's slice: %s", got)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := newBackend(t)

		if err := backend.Put([]byte("nope"), []byte("k"), []byte("v")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put into missing bucket: got %v, want ErrBucketNotFound", err)
		}
		if _, err := backend.Get([]byte("nope"), []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get from missing bucket: got %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(localeBucket)
		backend.Put(localeBucket, []byte("k"), []byte("v"))

		if err := backend.Delete(localeBucket, []byte("k")); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if got, _ := backend.Get(localeBucket, []byte("k")); got != nil {
			t.Error("Key should not exist after deletion")
		}
	})

	t.Run("ForEach", func(t *testing.T) {
		backend := newBackend(t)
		backend.CreateBucket(localeBucket)

		expected := map[string]string{
			"en_US/address": "a",
			"en_US/name":    "n",
			"en_GB/name":    "g",
		}
		for k, v := range expected {
			backend.Put(localeBucket, []byte(k), []byte(v))
		}

		collected := make(map[string]string)
		err := backend.ForEach(localeBucket, func(k, v []byte) error {
			collected[string(k)] = string(v)
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}
		if len(collected) != len(expected) {
			t.Errorf("ForEach collected %d items, want %d", len(collected), len(expected))
		}
		for k, v := range expected {
			if collected[k] != v {
				t.Errorf("ForEach: key %s = %s, want %s", k, collected[k], v)
			}
		}
	})
}
