package sokoconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("LoadFile on a missing file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadFile on a missing file = %+v, want defaults", cfg)
	}
}

func TestLoadFileAppliesOverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"b_type_worker_count": 8, "http_listen_addr": ":9999"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BTypeWorkerCount != 8 {
		t.Fatalf("BTypeWorkerCount = %d, want 8", cfg.BTypeWorkerCount)
	}
	if cfg.HTTPListenAddr != ":9999" {
		t.Fatalf("HTTPListenAddr = %q, want %q", cfg.HTTPListenAddr, ":9999")
	}
	// Fields absent from the file keep their default values.
	if cfg.TTInitialStripes != DefaultConfig().TTInitialStripes {
		t.Fatalf("TTInitialStripes = %d, want unchanged default %d", cfg.TTInitialStripes, DefaultConfig().TTInitialStripes)
	}
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
