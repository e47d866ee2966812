package models

import (
	"fmt"
	"strings"
)

// ClipResult represents the outcome of normalizing a single clip.
//
// It enforces logical consistency: successful results must have an
// output path and no error, while failed results must have an error and
// no output path. Use NewClipResultSuccess or NewClipResultFailure to
// create validated instances.
type ClipResult struct {
	Index      uint   `json:"index"`
	OutputPath string `json:"output_path"`
	Success    bool   `json:"success"`
	Error      error  `json:"error"`
}

// NewClipResultSuccess creates a successful ClipResult with validation.
//
// Returns an error if outputPath is empty or whitespace-only.
func NewClipResultSuccess(index uint, outputPath string) (*ClipResult, error) {
	cr := &ClipResult{
		Index:      index,
		OutputPath: outputPath,
		Success:    true,
	}
	if err := cr.Validate(); err != nil {
		return nil, fmt.Errorf("invalid clip result: %w", err)
	}
	return cr, nil
}

// NewClipResultFailure creates a failed ClipResult with validation.
//
// The error parameter must not be nil.
func NewClipResultFailure(index uint, normErr error) (*ClipResult, error) {
	if normErr == nil {
		return nil, fmt.Errorf("invalid clip result: error cannot be nil for failed result")
	}
	return &ClipResult{
		Index:   index,
		Success: false,
		Error:   normErr,
	}, nil
}

// Validate checks if the ClipResult has consistent state.
//
// Returns an error if:
//   - Success is true but Error is not nil
//   - Success is false but Error is nil
//   - Success is true but OutputPath is empty
//   - Success is false but OutputPath is set
func (cr *ClipResult) Validate() error {
	if cr.Success && cr.Error != nil {
		return fmt.Errorf("inconsistent state: Success is true but Error is not nil")
	}

	if !cr.Success && cr.Error == nil {
		return fmt.Errorf("failed result must have an error")
	}

	if cr.Success && strings.TrimSpace(cr.OutputPath) == "" {
		return fmt.Errorf("output_path cannot be empty for successful result")
	}

	if !cr.Success && strings.TrimSpace(cr.OutputPath) != "" {
		return fmt.Errorf("failed result should not have output_path")
	}

	return nil
}
