package concatenator

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"reelmaker/command"
	"reelmaker/models"
)

// Concatenator joins normalized clips into one continuous video using
// ffmpeg's concat demuxer. All clips share the normalizer's fixed output
// profile, so the join is a pure stream copy with no re-encoding.
type Concatenator struct {
	manifestPath string
	runner       command.Runner
	logger       *slog.Logger
}

// NewConcatenator creates a concatenator that writes its file manifest
// to manifestPath and executes the concat job through runner.
func NewConcatenator(manifestPath string, runner command.Runner, logger *slog.Logger) *Concatenator {
	if runner == nil {
		runner = command.ExecRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Concatenator{
		manifestPath: manifestPath,
		runner:       runner,
		logger:       logger,
	}
}

// Concatenate merges normalized clips into outputPath.
//
// Results are ordered by clip index before the manifest is built, so
// callers may hand over pool results in completion order. Any failed
// result is fatal; index gaps (from skipped missing sources) are logged
// and tolerated. The manifest file is left in place for the pipeline's
// cleanup stage.
func (c *Concatenator) Concatenate(results []*models.ClipResult, outputPath string) error {
	ordered, err := c.orderResults(results)
	if err != nil {
		return err
	}

	if gaps := findGaps(ordered); len(gaps) > 0 {
		c.logger.Warn("clip sequence has gaps", "indices", gaps)
	}

	if err := c.writeManifest(ordered); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	job := NewConcatJob(c.manifestPath, outputPath)
	if err := c.runner.Run(job); err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}

	// Verify output file was created
	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("output file not created: %w", err)
	}

	return nil
}

// orderResults validates the results and sorts them by clip index.
func (c *Concatenator) orderResults(results []*models.ClipResult) ([]*models.ClipResult, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no normalized clips to concatenate")
	}

	ordered := make([]*models.ClipResult, 0, len(results))
	for _, result := range results {
		if !result.Success || result.OutputPath == "" {
			return nil, fmt.Errorf("clip %03d was not normalized successfully: %v", result.Index, result.Error)
		}
		if _, err := os.Stat(result.OutputPath); err != nil {
			return nil, fmt.Errorf("normalized clip missing on disk: %s", result.OutputPath)
		}
		ordered = append(ordered, result)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	return ordered, nil
}

// findGaps returns the indices absent from an ordered result sequence.
func findGaps(ordered []*models.ClipResult) []uint {
	var gaps []uint
	for i := 0; i < len(ordered)-1; i++ {
		for id := ordered[i].Index + 1; id < ordered[i+1].Index; id++ {
			gaps = append(gaps, id)
		}
	}
	return gaps
}

// writeManifest writes the concat demuxer file list, one
// "file '<path>'" line per clip in index order.
func (c *Concatenator) writeManifest(ordered []*models.ClipResult) error {
	var sb strings.Builder
	for _, result := range ordered {
		absPath, err := filepath.Abs(result.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for %s: %w", result.OutputPath, err)
		}

		// Escape single quotes in path (replace ' with '\'' for the demuxer)
		escapedPath := strings.ReplaceAll(absPath, "'", "'\\''")
		fmt.Fprintf(&sb, "file '%s'\n", escapedPath)
	}

	return os.WriteFile(c.manifestPath, []byte(sb.String()), 0644)
}

// ConcatJob is the engine job for the concat demuxer. It implements
// command.Command so the pipeline can execute it through an injected
// Runner like every other stage.
type ConcatJob struct {
	manifestPath string
	outputPath   string
}

// NewConcatJob creates a concat job reading manifestPath and writing
// outputPath.
func NewConcatJob(manifestPath, outputPath string) *ConcatJob {
	return &ConcatJob{
		manifestPath: manifestPath,
		outputPath:   outputPath,
	}
}

// BuildArgs constructs the FFmpeg concat demuxer arguments.
func (j *ConcatJob) BuildArgs() []string {
	return []string{
		"-f", "concat",
		"-safe", "0",
		"-i", j.manifestPath,
		"-c", "copy", // Copy without re-encoding
		"-y", // Overwrite output file
		j.outputPath,
	}
}

// Run executes the concat operation.
func (j *ConcatJob) Run() error {
	cmd := exec.Command("ffmpeg", j.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg error: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// DryRun returns the concat command without executing it.
func (j *ConcatJob) DryRun() (string, error) {
	return fmt.Sprintf("ffmpeg %s", strings.Join(j.BuildArgs(), " ")), nil
}

// GetTaskType returns the task type (concat).
func (j *ConcatJob) GetTaskType() command.TaskType {
	return command.TaskTypeConcat
}

// GetInputPath returns the manifest path.
func (j *ConcatJob) GetInputPath() string {
	return j.manifestPath
}

// GetOutputPath returns the concatenated video path.
func (j *ConcatJob) GetOutputPath() string {
	return j.outputPath
}
