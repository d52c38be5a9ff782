// README: Named JSON blobs on the local filesystem (the client's durable state).
package infra

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// BlobStore persists each piece of app state as an independent named JSON file
// under a data directory. Loading tolerates missing and corrupted blobs: both
// are treated as absent, never as fatal.
type BlobStore struct {
	dir string
}

func NewBlobStore(dir string) *BlobStore {
	if dir == "" {
		dir = ".travelgenie"
	}
	return &BlobStore{dir: dir}
}

func (b *BlobStore) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Save serializes v and writes it as the named blob.
func (b *BlobStore) Save(name string, v any) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(b.path(name), data, 0o644)
}

// Load reads the named blob into v. It returns false when the blob is missing
// or does not decode; callers fall back to their default state.
func (b *BlobStore) Load(name string, v any) bool {
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("blobstore: discarding corrupted blob %q: %v", name, err)
		return false
	}
	return true
}

// Delete removes the named blob. Missing blobs are not an error.
func (b *BlobStore) Delete(name string) error {
	err := os.Remove(b.path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
