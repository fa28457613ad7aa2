package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(GetDefaultYAML("platformer"), ".yaml")
	if err != nil {
		t.Fatalf("decode(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultPlatformerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg PlatformerConfig)
	}{
		{
			name: "partial yaml keeps defaults",
			file: "tuning.yaml",
			content: `
hero:
  lives: 7
enemy:
  patrol_speed: 3.5
`,
			check: func(t *testing.T, cfg PlatformerConfig) {
				if cfg.Hero.Lives != 7 {
					t.Errorf("Hero.Lives = %d, expected 7", cfg.Hero.Lives)
				}
				if cfg.Enemy.PatrolSpeed != 3.5 {
					t.Errorf("Enemy.PatrolSpeed = %v, expected 3.5", cfg.Enemy.PatrolSpeed)
				}
				if cfg.Hero.JumpVelocity != 11 {
					t.Errorf("Hero.JumpVelocity = %v, expected default 11", cfg.Hero.JumpVelocity)
				}
			},
		},
		{
			name: "toml",
			file: "tuning.toml",
			content: `
[physics]
gravity = -30.0

[pools]
particles = 50

[particles.scale]
min = 0.1
max = 0.2
`,
			check: func(t *testing.T, cfg PlatformerConfig) {
				if cfg.Physics.Gravity != -30 {
					t.Errorf("Physics.Gravity = %v, expected -30", cfg.Physics.Gravity)
				}
				if cfg.Pools.Particles != 50 {
					t.Errorf("Pools.Particles = %d, expected 50", cfg.Pools.Particles)
				}
				if cfg.Particles.Scale != (Range{Min: 0.1, Max: 0.2}) {
					t.Errorf("Particles.Scale = %+v, expected {0.1 0.2}", cfg.Particles.Scale)
				}
				if cfg.Pools.Instances != 2048 {
					t.Errorf("Pools.Instances = %d, expected default 2048", cfg.Pools.Instances)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			cfg, err := LoadPlatformer(path)
			if err != nil {
				t.Fatalf("LoadPlatformer() failed: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadPlatformer(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("hero: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("LoadPlatformer(malformed) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pools:\n  instances: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPlatformer(invalid)
	if err == nil || !strings.Contains(err.Error(), "pools.instances") {
		t.Errorf("LoadPlatformer(invalid) error = %v, expected pools.instances complaint", err)
	}
}

func TestValidateRanges(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Particles.Lifespan = Range{Min: 2, Max: 1}
	cfg.Hero.Lives = 0
	cfg.Hero.MoveVelocity = 0
	cfg.Hero.JumpVelocity = -1
	cfg.Enemy.PatrolSpeed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	for _, want := range []string{"particles.lifespan", "hero.lives", "hero.move_velocity", "hero.jump_velocity", "enemy.patrol_speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q should mention %s", err, want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		progression bool
	}{
		{DifficultyEasy, 5, false},
		{DifficultyNormal, 3, false},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Hero.Lives != tc.lives {
				t.Errorf("Hero.Lives = %d, expected %d", cfg.Hero.Lives, tc.lives)
			}
			dm := NewDifficultyManager(cfg.Difficulty)
			if dm.IsEnabled() != tc.progression {
				t.Errorf("IsEnabled() = %v, expected %v", dm.IsEnabled(), tc.progression)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error(`ParsePreset("hard") should be DifficultyHard`)
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should parse to empty")
	}
}
