package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"veil/internal/config"
)

// Digest is a SHA-256 cache key.
type Digest = [32]byte

// Increment when the Payload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores finished obfuscation results on disk, keyed by a digest
// of the input content and the configuration fingerprint. Thread-safe for
// concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is one cached obfuscation result.
type Payload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	Code      string
	SourceMap string
	Seed      string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey derives the lookup digest from the input bytes and every option
// that influences output.
func CacheKey(content []byte, cfg *config.Options) (Digest, error) {
	fp, err := cfg.Fingerprint()
	if err != nil {
		return Digest{}, err
	}
	h := sha256.New()
	h.Write(content)
	h.Write(fp[:])
	var key Digest
	copy(key[:], h.Sum(nil))
	return key, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root tidy and easy to clear.
	return filepath.Join(c.dir, "out", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A missing entry
// or a payload written under a different schema reports a miss, not an error.
func (c *DiskCache) Get(key Digest, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
