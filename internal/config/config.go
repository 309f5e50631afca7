// Package config handles editor configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Editor  EditorConfig  `yaml:"editor"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 disables the cap
	Samples    int    `yaml:"samples"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	ShadowResolution int32      `yaml:"shadow_resolution"`
	ClearColor       [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the initial view.
type CameraConfig struct {
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	FOV    float32 `yaml:"fov"` // Degrees
	Radius float32 `yaml:"radius"`
	Beta   float32 `yaml:"beta"` // Polar angle from +Y, degrees
	Phi    float32 `yaml:"phi"`  // Azimuth from +Z, degrees
}

// LightConfig holds the initial light placement.
type LightConfig struct {
	Position [3]float32 `yaml:"position"`
}

// EditorConfig holds per-keypress increments.
type EditorConfig struct {
	TranslateStep float32 `yaml:"translate_step"`
	RotateStep    float32 `yaml:"rotate_step"` // Degrees
	ScaleStep     float32 `yaml:"scale_step"`
	CameraStep    float32 `yaml:"camera_step"`
	LightStep     float32 `yaml:"light_step"`
}

// DataConfig holds mesh file locations. Relative paths are resolved against
// MeshDir. An empty path falls back to the built-in mesh where one exists.
type DataConfig struct {
	MeshDir       string   `yaml:"mesh_dir"`
	Cube          string   `yaml:"cube"`
	BumpyCube     string   `yaml:"bumpy_cube"`
	Bunny         string   `yaml:"bunny"`
	Startup       []string `yaml:"startup"`        // Templates inserted at launch
	ScreenshotDir string   `yaml:"screenshot_dir"` // F12 captures
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	LogFile     string `yaml:"log_file"`
	FPSInterval int    `yaml:"fps_interval"` // Seconds between FPS reports, 0 disables
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Scene Editor",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
			Samples:    4,
		},
		Render: RenderConfig{
			ShadowResolution: 1024,
			ClearColor:       [3]float32{0.5, 0.5, 0.5},
		},
		Camera: CameraConfig{
			Near:   0.1,
			Far:    20,
			FOV:    45,
			Radius: 5,
			Beta:   90,
			Phi:    0,
		},
		Light: LightConfig{
			Position: [3]float32{1, 1, 1},
		},
		Editor: EditorConfig{
			TranslateStep: 0.1,
			RotateStep:    20,
			ScaleStep:     0.1,
			CameraStep:    0.1,
			LightStep:     0.1,
		},
		Data: DataConfig{
			MeshDir:       "data",
			BumpyCube:     "bumpy_cube.off",
			Bunny:         "bunny.off",
			Startup:       []string{"plane"},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:       "info",
			LogFile:     "",
			FPSInterval: 8,
		},
	}
}

// Validate reports settings the editor cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera depth range [%v, %v]", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Radius <= 0:
		return fmt.Errorf("%w: camera radius %v", ErrInvalid, c.Camera.Radius)
	case c.Light.Position == [3]float32{}:
		return fmt.Errorf("%w: light at the origin", ErrInvalid)
	}
	return nil
}
