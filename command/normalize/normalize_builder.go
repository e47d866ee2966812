package normalize

import (
	"fmt"
	"os/exec"
	"strings"

	"reelmaker/command"
	"reelmaker/models"
)

// Default target profile: portrait 1080x1920, the reel/short format.
const (
	DefaultWidth  = 1080
	DefaultHeight = 1920
)

// NormalizeBuilder constructs ffmpeg commands that scale a clip to fit
// within the target resolution (preserving aspect ratio) and pad the
// remainder with black, producing a uniform output profile so the
// concatenation stage can run as a pure stream copy.
//
// The audio stream is copied untouched.
type NormalizeBuilder struct {
	clip       *models.Clip
	width      int
	height     int
	padColor   string
	videoCodec string
	extraArgs  []string
}

// NewNormalizeBuilder creates a builder for the given clip.
func NewNormalizeBuilder(clip *models.Clip) *NormalizeBuilder {
	return &NormalizeBuilder{
		clip:     clip,
		width:    DefaultWidth,
		height:   DefaultHeight,
		padColor: "black",
	}
}

// SetResolution overrides the target output resolution.
func (n *NormalizeBuilder) SetResolution(width, height int) *NormalizeBuilder {
	n.width = width
	n.height = height
	return n
}

// SetPadColor sets the padding color (default "black").
func (n *NormalizeBuilder) SetPadColor(color string) *NormalizeBuilder {
	n.padColor = color
	return n
}

// SetVideoCodec sets the video codec for re-encoding the scaled stream
// (empty = ffmpeg default for the output container).
func (n *NormalizeBuilder) SetVideoCodec(codec string) *NormalizeBuilder {
	n.videoCodec = codec
	return n
}

// AddExtraArgs appends custom ffmpeg arguments before the output path.
func (n *NormalizeBuilder) AddExtraArgs(args ...string) *NormalizeBuilder {
	n.extraArgs = append(n.extraArgs, args...)
	return n
}

// FilterChain returns the scale+pad video filter expression.
func (n *NormalizeBuilder) FilterChain() string {
	return fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=%s",
		n.width, n.height, n.width, n.height, n.padColor)
}

// BuildArgs constructs the FFmpeg command arguments.
func (n *NormalizeBuilder) BuildArgs() []string {
	if n.clip == nil {
		return []string{}
	}

	args := []string{
		"-i", n.clip.SourcePath,
		"-vf", n.FilterChain(),
	}

	if n.videoCodec != "" {
		args = append(args, "-c:v", n.videoCodec)
	}

	// Audio passes through unmodified.
	args = append(args, "-c:a", "copy")

	args = append(args, n.extraArgs...)
	args = append(args, "-y", n.clip.OutputPath)
	return args
}

// Run executes the FFmpeg command.
func (n *NormalizeBuilder) Run() error {
	if n.clip == nil {
		return fmt.Errorf("cannot run command: clip is nil")
	}

	args := n.BuildArgs()
	cmd := exec.Command("ffmpeg", args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg command failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (n *NormalizeBuilder) DryRun() (string, error) {
	if n.clip == nil {
		return "", fmt.Errorf("cannot build command: clip is nil")
	}
	return fmt.Sprintf("ffmpeg %s", strings.Join(n.BuildArgs(), " ")), nil
}

// GetTaskType returns the task type (normalize).
func (n *NormalizeBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeNormalize
}

// GetInputPath returns the clip source path, or empty if clip is nil.
func (n *NormalizeBuilder) GetInputPath() string {
	if n.clip == nil {
		return ""
	}
	return n.clip.SourcePath
}

// GetOutputPath returns the normalized-output path, or empty if clip is nil.
func (n *NormalizeBuilder) GetOutputPath() string {
	if n.clip == nil {
		return ""
	}
	return n.clip.OutputPath
}
