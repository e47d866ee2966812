// Package models provides core data structures for the assembly pipeline.
package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Clip represents one numbered input video in the assembly sequence.
//
// Clips are addressed by a 1-based sequence index. Source files follow
// the NNN.mp4 naming convention (3-digit zero-padded index), and each
// clip's normalized output lives in the run workspace as NNN_scaled.mp4.
//
// Use NewClip to create a validated Clip instance.
type Clip struct {
	Index      uint   `json:"index"`
	SourcePath string `json:"source_path"`
	OutputPath string `json:"output_path"`
}

// NewClip creates a Clip for the given sequence index, deriving the
// source and normalized-output paths from the naming convention.
//
// Returns an error if index is zero or either directory is empty.
//
// Example:
//
//	clip, err := models.NewClip(7, ".", "/tmp/reel-abc")
//	// clip.SourcePath == "007.mp4", clip.OutputPath == "/tmp/reel-abc/007_scaled.mp4"
func NewClip(index uint, sourceDir, workDir string) (*Clip, error) {
	if index == 0 {
		return nil, fmt.Errorf("invalid clip: index must start at 1")
	}
	if strings.TrimSpace(sourceDir) == "" {
		return nil, fmt.Errorf("invalid clip: source directory cannot be empty")
	}
	if strings.TrimSpace(workDir) == "" {
		return nil, fmt.Errorf("invalid clip: work directory cannot be empty")
	}

	return &Clip{
		Index:      index,
		SourcePath: filepath.Join(sourceDir, fmt.Sprintf("%03d.mp4", index)),
		OutputPath: filepath.Join(workDir, fmt.Sprintf("%03d_scaled.mp4", index)),
	}, nil
}
