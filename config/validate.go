package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	if c.ClipCount == 0 {
		errors = append(errors, "clip count must be at least 1")
	}

	if c.MusicPath == "" {
		errors = append(errors, "music file is required")
	} else {
		if _, err := os.Stat(c.MusicPath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("music file does not exist: %s", c.MusicPath))
		}
	}

	if c.FadeDuration < FadeMin || c.FadeDuration > FadeMax {
		errors = append(errors, fmt.Sprintf("fade duration must be between %.0f and %.0f seconds", FadeMin, FadeMax))
	}

	if c.SourceDir == "" {
		errors = append(errors, "source directory is required")
	}

	if c.Output == "" {
		errors = append(errors, "output file is required")
	}

	// Validate workers (0 is valid, means auto-detect)
	if c.Workers < 0 {
		errors = append(errors, "workers cannot be negative (use 0 for auto-detect)")
	}

	if err := c.Video.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("video config: %v", err))
	}

	if err := c.Audio.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("audio config: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks if the normalization profile is valid
func (vc *VideoConfig) Validate() error {
	var errors []string

	if vc.Width <= 0 {
		errors = append(errors, "width must be positive")
	}
	if vc.Height <= 0 {
		errors = append(errors, "height must be positive")
	}
	if vc.PadColor == "" {
		errors = append(errors, "pad color is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if audio configuration is valid
func (ac *AudioConfig) Validate() error {
	var errors []string

	if ac.Codec == "" {
		errors = append(errors, "codec is required")
	}
	if ac.Bitrate == "" {
		errors = append(errors, "bitrate is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}
