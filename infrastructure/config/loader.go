package config

import (
	"fmt"
	"os"

	"move-clipper/domain/clip"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

// PathsConfig contains directory paths for clip extraction
type PathsConfig struct {
	VideoDirectory  string `yaml:"video_directory"`
	OutputDirectory string `yaml:"output_directory"`
	FrameDataPath   string `yaml:"frame_data_path"`
}

// ExtractionConfig contains window-sizing constants and the duration prober
// selection. FPS is the reference frame rate frame counts are recorded at,
// not the frame rate of any particular source video.
type ExtractionConfig struct {
	FPS             float64 `yaml:"fps"`
	PaddingFrames   int     `yaml:"padding_frames"`
	ExtraPre        float64 `yaml:"extra_pre"`
	ExtraPost       float64 `yaml:"extra_post"`
	OutputExtension string  `yaml:"output_extension"`
	Prober          string  `yaml:"prober"` // "ffprobe" (default) or "opencv"
}

// Default returns a configuration populated with the documented defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			VideoDirectory:  "videos",
			OutputDirectory: "output",
			FrameDataPath:   "frame_data.json",
		},
		Extraction: ExtractionConfig{
			FPS:             clip.DefaultFPS,
			PaddingFrames:   clip.DefaultPaddingFrames,
			ExtraPre:        clip.DefaultExtraPre,
			ExtraPost:       clip.DefaultExtraPost,
			OutputExtension: ".mp4",
			Prober:          "ffprobe",
		},
	}
}

// Load reads and parses the configuration from the specified YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
