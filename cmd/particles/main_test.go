package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/particles/internal/config"
	"github.com/spf13/cobra"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	configFile, preset = "", ""

	cmd := &cobra.Command{Use: "test"}
	addSimFlags(cmd)
	addViewFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cmd := newTestCommand(t)

	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != config.DefaultSize {
		t.Errorf("expected default size, got %d", cfg.Size)
	}
	if cfg.Seed == 0 {
		t.Error("expected a time-derived seed")
	}
}

func TestResolveConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("size: 77\nworkers: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCommand(t, "--config", path, "--workers", "5", "--seed", "11", "--trace")

	cfg, err := resolveConfig(cmd, "heavy")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Size != 77 {
		t.Errorf("config file should override preset size, got %d", cfg.Size)
	}
	if cfg.Workers != 5 {
		t.Errorf("flag should override config file workers, got %d", cfg.Workers)
	}
	if cfg.Physics != config.Presets["heavy"].Physics {
		t.Errorf("preset physics lost: %+v", cfg.Physics)
	}
	if cfg.Seed != 11 || !cfg.Trace {
		t.Errorf("flags not applied: seed %d trace %v", cfg.Seed, cfg.Trace)
	}
}

func TestResolveConfig_UnknownPreset(t *testing.T) {
	cmd := newTestCommand(t)
	if _, err := resolveConfig(cmd, "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestParseSweep(t *testing.T) {
	name, values, err := parseSweep("collision_radius=1, 2,3.5")
	if err != nil {
		t.Fatal(err)
	}
	if name != "collision_radius" || len(values) != 3 || values[2] != 3.5 {
		t.Errorf("unexpected parse %s %v", name, values)
	}

	for _, bad := range []string{"g", "=1", "g=", "g=a"} {
		if _, _, err := parseSweep(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]int{"b": 1, "a": 2, "c": 3})
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("unexpected order %v", keys)
	}
}
