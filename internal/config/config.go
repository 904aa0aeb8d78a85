package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"
)

// Config holds output paths and render settings.
type Config struct {
	// Paths
	Output        string `json:"output"`
	OutputDir     string `json:"output_dir"`
	WebPOutput    string `json:"webp_output"`
	PreviewOutput string `json:"preview_output"`

	// Render settings
	Scene           string  `json:"scene"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	FOV             float32 `json:"fov"`
	Yaw             float32 `json:"yaw"`
	Pitch           float32 `json:"pitch"`
	Roll            float32 `json:"roll"`
	Workers         int     `json:"workers"`
	PreviewSize     int     `json:"preview_size"`
	ProgressSeconds float64 `json:"progress_seconds"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.WebPOutput != "" {
		c.WebPOutput = flags.WebPOutput
	}
	if flags.PreviewOutput != "" {
		c.PreviewOutput = flags.PreviewOutput
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Scene == "" {
		c.Scene = "default"
	}
	if c.Output == "" {
		c.Output = "untitled.ppm"
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Defaults for render settings
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 480
	}
	if c.FOV == 0 {
		c.FOV = 30
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 160
	}
	if c.ProgressSeconds <= 0 {
		c.ProgressSeconds = 2
	}
}

// Validate rejects settings the renderer cannot use.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("config: fov %g outside (0, 180)", c.FOV)
	}
	return nil
}

// ProgressInterval is the delay between progress reports.
func (c *Config) ProgressInterval() time.Duration {
	return time.Duration(c.ProgressSeconds * float64(time.Second))
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene         string
	Output        string
	OutputDir     string
	WebPOutput    string
	PreviewOutput string
	Width         int
	Height        int
	FOV           float32
	Workers       int
}
