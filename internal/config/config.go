// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// CameraConfig holds the starting camera state. Mode is "orbit" or "free".
type CameraConfig struct {
	Mode string  `yaml:"mode"`
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	Z    float32 `yaml:"z"`
}

// SceneConfig holds the demo scene settings.
type SceneConfig struct {
	Texture  string  `yaml:"texture"`  // TGA path, empty for untextured
	SpinRate float32 `yaml:"spin_rate"` // radians per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Camera: CameraConfig{
			Mode: "orbit",
			FOV:  45,
			Near: 0.1,
			Far:  1000,
			X:    0,
			Y:    0,
			Z:    4,
		},
		Scene: SceneConfig{
			Texture:  "",
			SpinRate: 0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
