package locale

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sync"

	"pkg.jsn.cam/fakegen/pkg/storage"
)

//go:embed data
var embedded embed.FS

const (
	kindAddress = "address"
	kindName    = "name"
)

var cacheBucket = []byte("locales")

// Loader reads locale documents from a filesystem laid out as
// <locale>/<kind>.yaml and decodes each one at most once.
type Loader struct {
	fsys  fs.FS
	cache *storage.JSONStore

	mu     sync.Mutex
	loaded map[string]record
}

type Option func(*Loader)

// WithCache stores decoded records in backend, keyed by locale, kind and a
// SHA-256 of the document, so later loaders reading the same document skip
// decoding.
func WithCache(backend storage.Backend) Option {
	return func(l *Loader) {
		l.cache = storage.NewJSONStore(backend)
	}
}

func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:   fsys,
		loaded: make(map[string]record),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Default returns a Loader over the locales bundled with this package.
func Default(opts ...Option) *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return NewLoader(sub, opts...)
}

// Locales lists the locale directories available to the loader.
func (l *Loader) Locales() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, err
	}
	var locales []string
	for _, e := range entries {
		if e.IsDir() {
			locales = append(locales, e.Name())
		}
	}
	return locales, nil
}

func (l *Loader) LoadAddress(locale string) (*AddressMetadata, error) {
	rec, err := l.load(locale, kindAddress, func() record { return &AddressMetadata{} })
	if err != nil {
		return nil, err
	}
	return rec.(*AddressMetadata), nil
}

func (l *Loader) LoadName(locale string) (*NameMetadata, error) {
	rec, err := l.load(locale, kindName, func() record { return &NameMetadata{} })
	if err != nil {
		return nil, err
	}
	return rec.(*NameMetadata), nil
}

func (l *Loader) load(locale, kind string, newRecord func() record) (record, error) {
	key := locale + "/" + kind

	l.mu.Lock()
	defer l.mu.Unlock()

	if rec, ok := l.loaded[key]; ok {
		return rec, nil
	}

	data, err := fs.ReadFile(l.fsys, path.Join(locale, kind+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (no %s metadata)", ErrUnknownLocale, locale, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	entry := cacheKey(key, data)
	if rec := l.fromCache(entry, newRecord()); rec != nil {
		l.loaded[key] = rec
		return rec, nil
	}

	rec := newRecord()
	if err := decode(data, rec); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	log.Printf("[LOCALE] Decoded %s metadata for %s", kind, locale)

	if l.cache != nil {
		if err := l.cache.PutJSON(cacheBucket, []byte(entry), rec); err != nil {
			log.Printf("[LOCALE] Warning: Failed to cache %s: %v", key, err)
		}
	}

	l.loaded[key] = rec
	return rec, nil
}

// cacheKey ties a cached record to the exact document it was decoded from,
// so edited or different source files never hit a stale entry.
func cacheKey(key string, data []byte) string {
	sum := sha256.Sum256(data)
	return key + "/" + hex.EncodeToString(sum[:])
}

// fromCache returns nil when there is no cache, no entry, or the entry no
// longer validates.
func (l *Loader) fromCache(key string, rec record) record {
	if l.cache == nil {
		return nil
	}
	found, err := l.cache.GetJSON(cacheBucket, []byte(key), rec)
	if err != nil {
		log.Printf("[LOCALE] Warning: Failed to read cached %s: %v", key, err)
		return nil
	}
	if !found {
		return nil
	}
	if err := rec.Validate(); err != nil {
		log.Printf("[LOCALE] Warning: Ignoring stale cached %s: %v", key, err)
		return nil
	}
	log.Printf("[LOCALE] Loaded %s from cache", key)
	return rec
}
