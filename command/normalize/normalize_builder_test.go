package normalize

import (
	"strings"
	"testing"

	"reelmaker/command"
	"reelmaker/models"
)

func testClip(t *testing.T) *models.Clip {
	t.Helper()
	clip, err := models.NewClip(1, ".", "/tmp/work")
	if err != nil {
		t.Fatalf("Failed to create clip: %v", err)
	}
	return clip
}

func TestBuildArgs_Defaults(t *testing.T) {
	b := NewNormalizeBuilder(testClip(t))
	args := b.BuildArgs()
	cmdLine := strings.Join(args, " ")

	expectations := []string{
		"-i 001.mp4",
		"scale=1080:1920:force_original_aspect_ratio=decrease",
		"pad=1080:1920:(ow-iw)/2:(oh-ih)/2:color=black",
		"-c:a copy",
		"-y /tmp/work/001_scaled.mp4",
	}
	for _, want := range expectations {
		if !strings.Contains(cmdLine, want) {
			t.Errorf("Expected args to contain %q, got: %s", want, cmdLine)
		}
	}

	// Video must be re-encoded, never stream-copied: the filter chain
	// rewrites every frame.
	if strings.Contains(cmdLine, "-c:v copy") {
		t.Error("Normalization must not copy the video stream")
	}
}

func TestBuildArgs_CustomResolution(t *testing.T) {
	b := NewNormalizeBuilder(testClip(t)).SetResolution(1280, 720).SetPadColor("white")
	filter := b.FilterChain()

	if !strings.Contains(filter, "scale=1280:720") {
		t.Errorf("Expected custom scale in filter, got: %s", filter)
	}
	if !strings.Contains(filter, "color=white") {
		t.Errorf("Expected custom pad color in filter, got: %s", filter)
	}
}

func TestBuildArgs_VideoCodec(t *testing.T) {
	b := NewNormalizeBuilder(testClip(t)).SetVideoCodec("libx264")
	cmdLine := strings.Join(b.BuildArgs(), " ")

	if !strings.Contains(cmdLine, "-c:v libx264") {
		t.Errorf("Expected video codec in args, got: %s", cmdLine)
	}
}

func TestBuildArgs_NilClip(t *testing.T) {
	b := NewNormalizeBuilder(nil)

	if args := b.BuildArgs(); len(args) != 0 {
		t.Errorf("Expected empty args for nil clip, got: %v", args)
	}
	if err := b.Run(); err == nil {
		t.Error("Expected error running with nil clip")
	}
	if _, err := b.DryRun(); err == nil {
		t.Error("Expected error from DryRun with nil clip")
	}
	if b.GetInputPath() != "" || b.GetOutputPath() != "" {
		t.Error("Expected empty paths for nil clip")
	}
}

func TestDryRun(t *testing.T) {
	b := NewNormalizeBuilder(testClip(t))
	cmdLine, err := b.DryRun()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(cmdLine, "ffmpeg ") {
		t.Errorf("Expected command to start with 'ffmpeg ', got: %s", cmdLine)
	}
}

func TestTaskMetadata(t *testing.T) {
	b := NewNormalizeBuilder(testClip(t))

	if b.GetTaskType() != command.TaskTypeNormalize {
		t.Errorf("GetTaskType = %s; want %s", b.GetTaskType(), command.TaskTypeNormalize)
	}
	if b.GetInputPath() != "001.mp4" {
		t.Errorf("GetInputPath = %q; want %q", b.GetInputPath(), "001.mp4")
	}
	if b.GetOutputPath() != "/tmp/work/001_scaled.mp4" {
		t.Errorf("GetOutputPath = %q; want %q", b.GetOutputPath(), "/tmp/work/001_scaled.mp4")
	}
}
