package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Analysis.MaxSeqLen != 512 || cfg.Analysis.VocabSize != 30522 {
		t.Errorf("classifier defaults = %d/%d, want 512/30522",
			cfg.Analysis.MaxSeqLen, cfg.Analysis.VocabSize)
	}
	if cfg.Analysis.TopWords != 10 || cfg.Analysis.CloudWords != 20 || cfg.Analysis.HistogramBins != 10 {
		t.Errorf("aggregation defaults = %d/%d/%d, want 10/20/10",
			cfg.Analysis.TopWords, cfg.Analysis.CloudWords, cfg.Analysis.HistogramBins)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revlens.yaml")
	content := "server:\n  addr: \":9090\"\nanalysis:\n  histogram_bins: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Analysis.HistogramBins != 5 {
		t.Errorf("histogram bins = %d, want 5", cfg.Analysis.HistogramBins)
	}
	// fields absent from the file keep their defaults
	if cfg.Analysis.MaxSeqLen != 512 {
		t.Errorf("max seq len = %d, want default 512", cfg.Analysis.MaxSeqLen)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REVLENS_ADDR", ":7070")
	t.Setenv("REVLENS_WORKERS", "4")
	t.Setenv("REVLENS_TOP_WORDS", "nonsense")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %q, want :7070", cfg.Server.Addr)
	}
	if cfg.Analysis.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Analysis.Workers)
	}
	// non-integer override is ignored
	if cfg.Analysis.TopWords != 10 {
		t.Errorf("top words = %d, want default 10", cfg.Analysis.TopWords)
	}
}
