// Package loop builds the audio-looping job: repeating a music track
// from its start indefinitely, then truncating at a target duration.
package loop

import (
	"fmt"
	"os/exec"
	"strings"

	"reelmaker/command"
	"reelmaker/internal/timeutil"
)

// LoopBuilder constructs ffmpeg commands that loop an audio file to at
// least cover a target duration, re-encoding into a fixed audio codec
// so the artifact can be muxed with a stream copy later if desired.
type LoopBuilder struct {
	inputPath      string
	outputPath     string
	targetDuration float64
	codec          string
	bitrate        string
}

// NewLoopBuilder creates a builder that loops inputPath out to
// targetDuration seconds, writing outputPath.
func NewLoopBuilder(inputPath, outputPath string, targetDuration float64) *LoopBuilder {
	return &LoopBuilder{
		inputPath:      inputPath,
		outputPath:     outputPath,
		targetDuration: targetDuration,
		codec:          "aac",
		bitrate:        "192k",
	}
}

// SetCodec sets the audio codec for the looped artifact (e.g. "aac").
func (l *LoopBuilder) SetCodec(codec string) *LoopBuilder {
	l.codec = codec
	return l
}

// SetBitrate sets the audio bitrate (e.g. "192k").
func (l *LoopBuilder) SetBitrate(bitrate string) *LoopBuilder {
	l.bitrate = bitrate
	return l
}

// BuildArgs constructs the FFmpeg command arguments.
//
// -stream_loop -1 repeats the input indefinitely; -t truncates the
// output at the target duration.
func (l *LoopBuilder) BuildArgs() []string {
	args := []string{
		"-stream_loop", "-1",
		"-i", l.inputPath,
		"-t", timeutil.FormatSeconds(l.targetDuration),
		"-vn",
		"-c:a", l.codec,
		"-b:a", l.bitrate,
		"-y", l.outputPath,
	}
	return args
}

// Run executes the FFmpeg command.
func (l *LoopBuilder) Run() error {
	if err := l.validate(); err != nil {
		return err
	}

	cmd := exec.Command("ffmpeg", l.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg command failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (l *LoopBuilder) DryRun() (string, error) {
	if err := l.validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("ffmpeg %s", strings.Join(l.BuildArgs(), " ")), nil
}

func (l *LoopBuilder) validate() error {
	if l.inputPath == "" {
		return fmt.Errorf("loop input path cannot be empty")
	}
	if l.outputPath == "" {
		return fmt.Errorf("loop output path cannot be empty")
	}
	if l.targetDuration <= 0 {
		return fmt.Errorf("loop target duration must be positive, got %.2f", l.targetDuration)
	}
	return nil
}

// GetTaskType returns the task type (loop).
func (l *LoopBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeLoop
}

// GetInputPath returns the music file path.
func (l *LoopBuilder) GetInputPath() string {
	return l.inputPath
}

// GetOutputPath returns the looped-audio artifact path.
func (l *LoopBuilder) GetOutputPath() string {
	return l.outputPath
}
