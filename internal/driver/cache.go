package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"fncomp/internal/component"
	"fncomp/internal/diag"
	"fncomp/internal/source"
)

// Current schema version - increment when CacheEntry format changes
const cacheSchemaVersion uint16 = 1

// CacheKey identifies one expansion: contract, attribute and item text.
type CacheKey [sha256.Size]byte

func (k CacheKey) String() string { return hex.EncodeToString(k[:]) }

// NewCacheKey hashes the inputs of one expansion.
func NewCacheKey(contractFingerprint, attrText, itemText string) CacheKey {
	h := sha256.New()
	for _, part := range []string{contractFingerprint, attrText, itemText} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	var k CacheKey
	copy(k[:], h.Sum(nil))
	return k
}

// DiskCache хранит результаты раскрытия по CacheKey на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu     sync.RWMutex
	dir    string
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheEntry is the stored outcome of one expansion. Spans are relative to
// the start of the annotated item so an entry survives edits elsewhere in the file.
type CacheEntry struct {
	Schema    uint16
	Function  string
	Component string
	Code      string
	Failed    bool
	Err       CachedError
}

// CachedError mirrors component.Error with item-relative spans.
type CachedError struct {
	Kind     uint8
	Modifier uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote
	Fixes    []CachedFix
}

type CachedNote struct {
	Start, End uint32
	Msg        string
}

type CachedFix struct {
	Title string
	Edits []CachedEdit
}

type CachedEdit struct {
	Start, End uint32
	NewText    string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it when missing.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := key.String()
	return filepath.Join(c.dir, "items", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes an entry to the disk cache.
func (c *DiskCache) Put(key CacheKey, entry *CacheEntry) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry.Schema = cacheSchemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads an entry. Entries of another schema count as misses.
func (c *DiskCache) Get(key CacheKey, out *CacheEntry) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.misses.Add(1)
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		c.misses.Add(1)
		return false, nil
	}
	c.hits.Add(1)
	return true, nil
}

// Stats returns hit and miss counters since the cache was opened.
func (c *DiskCache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items := filepath.Join(c.dir, "items")
	old := items + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(items, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// entryFromError stores e with spans relative to base. ok is false when a
// span falls outside [base.Start, base.End) and the entry cannot be reused.
func entryFromError(e *component.Error, base source.Span) (CachedError, bool) {
	rel := func(sp source.Span) (uint32, uint32, bool) {
		if !base.Contains(sp) {
			return 0, 0, false
		}
		return sp.Start - base.Start, sp.End - base.Start, true
	}
	start, end, ok := rel(e.Span)
	if !ok {
		return CachedError{}, false
	}
	ce := CachedError{
		Kind:     uint8(e.Kind),
		Modifier: uint8(e.Modifier),
		Code:     uint16(e.Code),
		Message:  e.Message,
		Start:    start,
		End:      end,
	}
	for _, n := range e.Notes {
		s, en, ok := rel(n.Span)
		if !ok {
			return CachedError{}, false
		}
		ce.Notes = append(ce.Notes, CachedNote{Start: s, End: en, Msg: n.Msg})
	}
	for _, f := range e.Fixes {
		cf := CachedFix{Title: f.Title}
		for _, ed := range f.Edits {
			s, en, ok := rel(ed.Span)
			if !ok {
				return CachedError{}, false
			}
			cf.Edits = append(cf.Edits, CachedEdit{Start: s, End: en, NewText: ed.NewText})
		}
		ce.Fixes = append(ce.Fixes, cf)
	}
	return ce, true
}

// toError rebuilds the error against base.
func (ce CachedError) toError(base source.Span) *component.Error {
	abs := func(s, e uint32) source.Span {
		return source.Span{File: base.File, Start: base.Start + s, End: base.Start + e}
	}
	e := &component.Error{
		Kind:     component.Kind(ce.Kind),
		Modifier: component.Modifier(ce.Modifier),
		Code:     diag.Code(ce.Code),
		Message:  ce.Message,
		Span:     abs(ce.Start, ce.End),
	}
	for _, n := range ce.Notes {
		e.Notes = append(e.Notes, diag.Note{Span: abs(n.Start, n.End), Msg: n.Msg})
	}
	for _, f := range ce.Fixes {
		fix := diag.Fix{Title: f.Title}
		for _, ed := range f.Edits {
			fix.Edits = append(fix.Edits, diag.TextEdit{Span: abs(ed.Start, ed.End), NewText: ed.NewText})
		}
		e.Fixes = append(e.Fixes, fix)
	}
	return e
}
