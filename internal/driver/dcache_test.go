package driver

import (
	"os"
	"path/filepath"
	"testing"

	"arkoi/internal/diag"
	"arkoi/internal/source"
)

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("arkoi-test")
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestDiskCacheMissOnEmpty(t *testing.T) {
	cache := openTestCache(t)
	var out DiskPayload
	hit, err := cache.Get([32]byte{1}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("expected a miss on an empty cache")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	key := [32]byte{0xAB, 0xCD}

	in := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   "some/file.ark",
		Failed: uint8(StageResolve),
		Diagnostics: []CachedDiagnostic{{
			Severity: uint8(diag.SevError),
			Code:     uint16(diag.ResSymbolNotFound),
			Message:  "the symbol 'missing' was not found",
			Labels:   []CachedLabel{{Start: 12, End: 19}},
			Notes:    []string{"did you forget a declaration?"},
		}},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("expected a hit")
	}
	if out.Path != in.Path || out.Failed != in.Failed {
		t.Errorf("got %+v", out)
	}
	if len(out.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d", len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Message != in.Diagnostics[0].Message || len(d.Labels) != 1 || d.Labels[0].Start != 12 {
		t.Errorf("got %+v", d)
	}
}

func TestDiskCacheRejectsOtherSchema(t *testing.T) {
	cache := openTestCache(t)
	key := [32]byte{7}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("a different schema version must read as a miss")
	}
}

func TestDiskCacheOverwrite(t *testing.T) {
	cache := openTestCache(t)
	key := [32]byte{9}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: "new"}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	if hit, _ := cache.Get(key, &out); !hit || out.Path != "new" {
		t.Errorf("got %+v, hit=%v", out, out.Path == "new")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache := openTestCache(t)
	key := [32]byte{3}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	if hit, _ := cache.Get(key, &out); hit {
		t.Fatal("expected a miss after DropAll")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put([32]byte{}, &DiskPayload{}); err != nil {
		t.Fatal(err)
	}
	if hit, err := cache.Get([32]byte{}, &DiskPayload{}); err != nil || hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
}

func TestPayloadRestoreRebindsSpans(t *testing.T) {
	res := CompileSource("bad.ark", []byte("let x @u8 = missing;"), Options{})
	if res.Failed != StageResolve {
		t.Fatalf("failed stage = %s", res.Failed)
	}
	payload := PayloadFromResult(res)

	fs := source.NewFileSet()
	fs.AddVirtual("pad.ark", nil) // shift IDs so rebinding is observable
	id := fs.AddVirtual("bad.ark", []byte("let x @u8 = missing;"))
	file := fs.Get(id)

	bag := diag.NewBag(0)
	failed := payload.Restore(file, bag)
	if failed != StageResolve {
		t.Errorf("restored stage = %s", failed)
	}
	if bag.Len() != res.Bag.Len() {
		t.Fatalf("restored %d diagnostics, want %d", bag.Len(), res.Bag.Len())
	}
	for _, d := range bag.Items() {
		for _, l := range d.Labels {
			if l.Span.File != file.ID {
				t.Errorf("label still bound to old file: %v", l.Span)
			}
		}
	}
}

func TestTokenizeCollectsLexErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ark")
	if err := os.WriteFile(path, []byte("let # x"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 {
		t.Errorf("bag len = %d, want 1", res.Bag.Len())
	}
	if len(res.Tokens) == 0 {
		t.Error("expected tokens despite the error")
	}
}

func TestParseStopsAfterLexErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ark")
	if err := os.WriteFile(path, []byte("let x = \x01;"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Parse(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range res.Bag.Items() {
		if d.Code >= 2000 {
			t.Errorf("syntax diagnostic after failed lexing: %v", d)
		}
	}
}
