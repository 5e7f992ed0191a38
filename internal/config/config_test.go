package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test camera defaults
	if cfg.Camera.Mode != "orbit" {
		t.Errorf("expected camera mode 'orbit', got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 {
		t.Errorf("expected near 0.1, got %f", cfg.Camera.Near)
	}
	if cfg.Camera.Far != 1000 {
		t.Errorf("expected far 1000, got %f", cfg.Camera.Far)
	}
	if cfg.Camera.Z != 4 {
		t.Errorf("expected camera z 4, got %f", cfg.Camera.Z)
	}

	// Test scene defaults
	if cfg.Scene.Texture != "" {
		t.Errorf("expected empty texture path, got %s", cfg.Scene.Texture)
	}
	if cfg.Scene.SpinRate != 0.8 {
		t.Errorf("expected spin rate 0.8, got %f", cfg.Scene.SpinRate)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  show_fps: true

camera:
  mode: "free"
  fov: 60
  near: 0.5
  far: 500
  x: 1
  y: 2
  z: 10

scene:
  texture: "crate.tga"
  spin_rate: 1.5

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if !cfg.Graphics.ShowFPS {
		t.Error("expected show_fps to be true")
	}

	if cfg.Camera.Mode != "free" {
		t.Errorf("expected camera mode 'free', got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Z != 10 {
		t.Errorf("expected camera z 10, got %f", cfg.Camera.Z)
	}

	if cfg.Scene.Texture != "crate.tga" {
		t.Errorf("expected texture 'crate.tga', got %s", cfg.Scene.Texture)
	}
	if cfg.Scene.SpinRate != 1.5 {
		t.Errorf("expected spin rate 1.5, got %f", cfg.Scene.SpinRate)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only override the camera mode; everything else keeps its default
	yamlContent := `
camera:
  mode: "free"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Camera.Mode != "free" {
		t.Errorf("expected camera mode 'free', got %s", cfg.Camera.Mode)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected default fov 45, got %f", cfg.Camera.FOV)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Camera.Mode = "free"
	cfg.Scene.SpinRate = 2.5

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", loaded.Graphics.Width)
	}
	if loaded.Camera.Mode != "free" {
		t.Errorf("expected camera mode 'free', got %s", loaded.Camera.Mode)
	}
	if loaded.Scene.SpinRate != 2.5 {
		t.Errorf("expected spin rate 2.5, got %f", loaded.Scene.SpinRate)
	}
}
