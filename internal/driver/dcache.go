package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"arkoi/internal/diag"
	"arkoi/internal/source"
)

// Bump when the payload format changes; stale entries are ignored.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists per-file front end results keyed by the source
// content hash, so unchanged files skip recompilation entirely.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedLabel is one serialized diagnostic label. Spans are stored as
// raw offsets; the file handle is re-bound on restore.
type CachedLabel struct {
	Start uint32
	End   uint32
	Msg   string
}

// CachedDiagnostic is the serialized form of one diagnostic.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Labels   []CachedLabel
	Notes    []string
}

// DiskPayload stores the outcome of compiling one file.
type DiskPayload struct {
	Schema      uint16
	Path        string
	Failed      uint8
	Diagnostics []CachedDiagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location.
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

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload, replacing any previous entry
// atomically.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) error {
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

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload back. The boolean reports a usable hit.
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the whole cache, useful after format changes.
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

// PayloadFromResult flattens a compile result for caching.
func PayloadFromResult(res *Result) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   res.File.Path,
		Failed: uint8(res.Failed),
	}
	for _, d := range res.Bag.Items() {
		cached := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Notes:    d.Notes,
		}
		for _, label := range d.Labels {
			cached.Labels = append(cached.Labels, CachedLabel{
				Start: label.Span.Start,
				End:   label.Span.End,
				Msg:   label.Msg,
			})
		}
		payload.Diagnostics = append(payload.Diagnostics, cached)
	}
	return payload
}

// Restore rebuilds the cached diagnostics against a freshly loaded
// file, re-binding every span to its handle.
func (p *DiskPayload) Restore(file *source.File, bag *diag.Bag) Stage {
	for _, cached := range p.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cached.Severity),
			Code:     diag.Code(cached.Code),
			Message:  cached.Message,
			Notes:    cached.Notes,
		}
		for _, label := range cached.Labels {
			d.Labels = append(d.Labels, diag.Label{
				Span: source.Span{File: file.ID, Start: label.Start, End: label.End},
				Msg:  label.Msg,
			})
		}
		bag.Add(d)
	}
	return Stage(p.Failed)
}
