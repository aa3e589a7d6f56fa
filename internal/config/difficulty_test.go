package config

import (
	"strings"
	"testing"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultInvadersConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	for _, score := range []int{0, 1600, 3200, 10000} {
		if got := d.EnemySpeed(2, score, 0); got != 2 {
			t.Errorf("EnemySpeed(2, %d) = %d, expected 2", score, got)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		level    float64
		expected int
	}{
		{0, 0.0, 2},
		{500, 0.5, 3},
		{1000, 1.0, 4},
		{5000, 1.0, 4}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.level)
		}
		if got := d.EnemySpeed(2, tc.score, 0); got != tc.expected {
			t.Errorf("EnemySpeed(2, %d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at tick 0 = %f, expected initial 0.5", got)
	}
	if got := d.Level(0, 100); got != 1.0 {
		t.Errorf("Level at max_at = %f, expected 1.0", got)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		speed   int
		drop    int
	}{
		{"", false, 0.0, 2, 20},
		{DifficultyFixed, false, 0.0, 2, 20},
		{DifficultyEasy, true, 0.0, 1, 20},
		{DifficultyNormal, true, 0.3, 2, 20},
		{DifficultyHard, true, 0.7, 2, 30},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Enemies.Speed != tc.speed || cfg.Enemies.Drop != tc.drop {
				t.Errorf("enemies speed/drop = %d/%d, expected %d/%d", cfg.Enemies.Speed, cfg.Enemies.Drop, tc.speed, tc.drop)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate: %v", err)
			}
		})
	}
}

func TestPresetHelpNamesRuleChanges(t *testing.T) {
	base := DefaultInvadersConfig()
	lines := strings.Split(PresetHelp, "\n")

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		t.Run(string(preset), func(t *testing.T) {
			var line string
			for _, l := range lines {
				if strings.HasPrefix(strings.TrimSpace(l), string(preset)+" ") {
					line = l
				}
			}
			if line == "" {
				t.Fatalf("no help line for %q", preset)
			}

			cfg := base
			ApplyPreset(&cfg, preset)
			if changed, named := cfg.Enemies.Speed != base.Enemies.Speed, strings.Contains(line, "speed ("); changed != named {
				t.Errorf("speed changed=%v but help %q names it=%v", changed, line, named)
			}
			if changed, named := cfg.Enemies.Drop != base.Enemies.Drop, strings.Contains(line, "drop"); changed != named {
				t.Errorf("drop changed=%v but help %q names it=%v", changed, line, named)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}
