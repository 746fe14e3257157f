package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Sampler.SampleRate != 30 {
		t.Errorf("SampleRate = %v, want 30", cfg.Sampler.SampleRate)
	}
	if cfg.Limits.MaxKeyframes != 10 {
		t.Errorf("MaxKeyframes = %v, want 10", cfg.Limits.MaxKeyframes)
	}
	if cfg.TargetDuration != 0 {
		t.Errorf("TargetDuration = %v, want derive-from-animations default", cfg.TargetDuration)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `input: in.svg
output: out.xml
target_duration: 12.5
sampler:
  sample_rate: 60
limits:
  max_keyframes: 4
shape_map:
  box: "7"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.InputPath != "in.svg" || cfg.OutputPath != "out.xml" {
		t.Errorf("paths = %q, %q", cfg.InputPath, cfg.OutputPath)
	}
	if cfg.TargetDuration != 12.5 {
		t.Errorf("TargetDuration = %v, want 12.5", cfg.TargetDuration)
	}
	if cfg.Sampler.SampleRate != 60 {
		t.Errorf("SampleRate = %v, want the file's 60", cfg.Sampler.SampleRate)
	}
	// Untouched fields keep their defaults.
	if cfg.Sampler.Precision != 0.001 {
		t.Errorf("Precision = %v, want default", cfg.Sampler.Precision)
	}
	if cfg.Limits.MaxKeyframes != 4 {
		t.Errorf("MaxKeyframes = %v, want 4", cfg.Limits.MaxKeyframes)
	}
	if cfg.Limits.MaxDuration != 300 {
		t.Errorf("MaxDuration = %v, want default", cfg.Limits.MaxDuration)
	}
	if cfg.ShapeMap["box"] != "7" {
		t.Errorf("ShapeMap = %v, want box mapped to 7", cfg.ShapeMap)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.InputPath = "anim.svg"
	cfg.TargetDuration = 3
	cfg.BuildVersion = "dev"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.InputPath != "anim.svg" || got.TargetDuration != 3 {
		t.Errorf("round trip lost values: %+v", got)
	}
	if got.BuildVersion != "" {
		t.Errorf("BuildVersion = %q, must not be persisted", got.BuildVersion)
	}
}
