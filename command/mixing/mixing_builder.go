package mixing

import (
	"fmt"
	"os/exec"
	"strings"

	"reelmaker/command"
)

// MixingBuilder constructs ffmpeg commands that mux a video file with a
// music track, applying a trailing audio fade-out. The video stream is
// always copied (never re-encoded); only audio is filtered and
// re-encoded. Output duration follows the shortest input (-shortest).
type MixingBuilder struct {
	videoInput string
	audioInput string
	outputPath string

	audioCodec   string
	audioBitrate string

	// Fade-out: starts at fadeStart seconds, lasts fadeDuration seconds.
	// Disabled when fadeDuration <= 0.
	fadeStart    float64
	fadeDuration float64

	extraArgs []string
}

// NewMixingBuilder creates a mixing builder.
// videoInput: path to the concatenated video (required)
// audioInput: path to the music track, looped or original (required)
// outputPath: path to the final output file (required)
func NewMixingBuilder(videoInput, audioInput, outputPath string) *MixingBuilder {
	return &MixingBuilder{
		videoInput: videoInput,
		audioInput: audioInput,
		outputPath: outputPath,
		audioCodec: "aac",
	}
}

// SetFadeOut configures the trailing audio fade.
// start may be negative when the fade is longer than the video; the
// value is passed to the engine unclamped.
func (m *MixingBuilder) SetFadeOut(start, duration float64) *MixingBuilder {
	m.fadeStart = start
	m.fadeDuration = duration
	return m
}

// SetAudioCodec sets the audio codec for the filtered track.
func (m *MixingBuilder) SetAudioCodec(codec string) *MixingBuilder {
	m.audioCodec = codec
	return m
}

// SetAudioBitrate sets the audio bitrate (e.g. "192k").
func (m *MixingBuilder) SetAudioBitrate(bitrate string) *MixingBuilder {
	m.audioBitrate = bitrate
	return m
}

// AddExtraArgs adds custom ffmpeg arguments before the output path.
func (m *MixingBuilder) AddExtraArgs(args ...string) *MixingBuilder {
	m.extraArgs = append(m.extraArgs, args...)
	return m
}

// BuildArgs constructs the ffmpeg command arguments.
func (m *MixingBuilder) BuildArgs() []string {
	args := []string{
		"-i", m.videoInput,
		"-i", m.audioInput,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", m.audioCodec,
	}

	if m.audioBitrate != "" {
		args = append(args, "-b:a", m.audioBitrate)
	}

	if m.fadeDuration > 0 {
		args = append(args, "-af",
			fmt.Sprintf("afade=t=out:st=%g:d=%g", m.fadeStart, m.fadeDuration))
	}

	args = append(args, "-shortest")
	args = append(args, m.extraArgs...)
	args = append(args, "-y", m.outputPath)

	return args
}

// Run executes the mixing command.
func (m *MixingBuilder) Run() error {
	if err := m.validate(); err != nil {
		return err
	}

	cmd := exec.Command("ffmpeg", m.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mixing failed: %w, output: %s", err, string(output))
	}
	return nil
}

// DryRun returns the command that would be executed without running it.
func (m *MixingBuilder) DryRun() (string, error) {
	if err := m.validate(); err != nil {
		return "", err
	}
	return "ffmpeg " + strings.Join(m.BuildArgs(), " "), nil
}

func (m *MixingBuilder) validate() error {
	if m.videoInput == "" {
		return fmt.Errorf("video input path cannot be empty")
	}
	if m.audioInput == "" {
		return fmt.Errorf("audio input path cannot be empty")
	}
	if m.outputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	return nil
}

// GetTaskType returns the task type identifier.
func (m *MixingBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeMixing
}

// GetInputPath returns the primary input path (video).
func (m *MixingBuilder) GetInputPath() string {
	return m.videoInput
}

// GetOutputPath returns the output file path.
func (m *MixingBuilder) GetOutputPath() string {
	return m.outputPath
}
