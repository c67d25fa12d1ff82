package nlp

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const validCorpusJSON = `{
	"intents": [
		{"tag": "greeting", "patterns": ["hi", "hello"], "responses": ["Hello!"]},
		{"tag": "farewell", "patterns": ["bye"], "responses": ["Goodbye!"]}
	]
}`

func TestParseCorpus(t *testing.T) {
	records, err := ParseCorpus([]byte(validCorpusJSON))
	if err != nil {
		t.Fatalf("ParseCorpus: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Tag != "greeting" || len(records[0].Patterns) != 2 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}

func TestParseCorpusRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"intents": [`},
		{"empty tag", `{"intents": [{"tag": "", "patterns": ["hi"]}]}`},
		{"duplicate tag", `{"intents": [{"tag": "a", "patterns": ["x"]}, {"tag": "a", "patterns": ["y"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCorpus([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	if err := os.WriteFile(path, []byte(validCorpusJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}

	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestModelCacheReuse(t *testing.T) {
	cache := NewModelCache()
	raw := []byte(validCorpusJSON)

	first, err := cache.Get(raw)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := cache.Get(raw)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != second {
		t.Error("identical corpus bytes produced a retrain")
	}

	changed := []byte(strings.Replace(validCorpusJSON, "bye", "ciao", 1))
	third, err := cache.Get(changed)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if third == first {
		t.Error("changed corpus bytes did not invalidate the cache")
	}
}

func TestModelCacheParseError(t *testing.T) {
	cache := NewModelCache()
	if _, err := cache.Get([]byte("{broken")); err == nil {
		t.Error("expected parse error")
	}
}

func TestModelCacheConcurrentReaders(t *testing.T) {
	cache := NewModelCache()
	raw := []byte(validCorpusJSON)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m, err := cache.Get(raw)
				if err != nil || m == nil {
					t.Error("concurrent Get failed")
					return
				}
			}
		}()
	}
	wg.Wait()
}
