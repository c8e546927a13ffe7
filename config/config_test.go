package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.Addr != want.Addr || cfg.Port != want.Port {
		t.Errorf("got %s:%s, want %s:%s", cfg.Addr, cfg.Port, want.Addr, want.Port)
	}
	if cfg.Simulation.NumAgents != want.Simulation.NumAgents {
		t.Errorf("num_agents = %d, want %d", cfg.Simulation.NumAgents, want.Simulation.NumAgents)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
port: "9000"
simulation:
  num_agents: 500
  topology: box
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %s, want 9000", cfg.Port)
	}
	if cfg.Simulation.NumAgents != 500 {
		t.Errorf("num_agents = %d, want 500", cfg.Simulation.NumAgents)
	}
	// 未指定の項目は既定値のまま
	if cfg.Addr != "localhost" {
		t.Errorf("addr = %s, want localhost", cfg.Addr)
	}
	if cfg.Simulation.DeathRate != Default().Simulation.DeathRate {
		t.Errorf("death_rate = %g, want default", cfg.Simulation.DeathRate)
	}
	if err := cfg.Simulation.Validate(); err != nil {
		t.Errorf("merged params should be valid: %v", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed yaml")
	}
}

func TestLoadPropagatesReadError(t *testing.T) {
	// ディレクトリを読むとos.ErrNotExist以外のエラーになる
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load should fail when path is a directory")
	}
}
