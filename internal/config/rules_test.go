package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithNoFileReturnsDefaults(t *testing.T) {
	rules, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if rules != Defaults() {
		t.Fatalf("rules = %+v, want defaults %+v", rules, Defaults())
	}
}

func TestLoadOverridesZeroShellTieTicks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte("zeroShellTieTicks: 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	rules, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rules.ZeroShellTieTicks != 10 {
		t.Fatalf("ZeroShellTieTicks = %d, want 10", rules.ZeroShellTieTicks)
	}
	if rules.ShellSubStepsPerTick != Defaults().ShellSubStepsPerTick {
		t.Fatalf("unrelated field ShellSubStepsPerTick changed: %d", rules.ShellSubStepsPerTick)
	}
}

func TestLoadRejectsWallHitsOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte("wallHitsToDestroy: 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error overriding the fixed wall-hit count")
	}
}

func TestEngineRulesProjection(t *testing.T) {
	rules := Defaults()
	er := rules.EngineRules()
	if er.ShellSubStepsPerTick != rules.ShellSubStepsPerTick || er.ZeroShellTieTicks != rules.ZeroShellTieTicks {
		t.Fatalf("EngineRules projection mismatch: %+v vs %+v", er, rules)
	}
}
