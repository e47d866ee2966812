package ffprobe

import (
	"strings"
	"testing"
)

func TestProbe_EmptyPath(t *testing.T) {
	_, err := Probe("")
	if err == nil {
		t.Error("Expected error for empty path")
	}
	if !strings.Contains(err.Error(), "cannot be empty") {
		t.Errorf("Expected 'cannot be empty' error, got: %v", err)
	}
}

func TestParseOutput(t *testing.T) {
	raw := []byte(`{
		"streams": [
			{"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1080, "height": 1920},
			{"index": 1, "codec_name": "aac", "codec_type": "audio", "sample_rate": "44100", "channels": 2}
		],
		"format": {
			"filename": "temp_concat.mp4",
			"format_name": "mov,mp4,m4a,3gp,3g2,mj2",
			"duration": "92.480000",
			"size": "10485760"
		}
	}`)

	result, err := parseOutput(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	duration, err := result.GetDuration()
	if err != nil {
		t.Fatalf("GetDuration failed: %v", err)
	}
	if duration != 92.48 {
		t.Errorf("Duration = %v; want 92.48", duration)
	}

	if got := len(result.GetVideoStreams()); got != 1 {
		t.Errorf("Video streams = %d; want 1", got)
	}
	if got := len(result.GetAudioStreams()); got != 1 {
		t.Errorf("Audio streams = %d; want 1", got)
	}

	video := result.GetVideoStreams()[0]
	if video.Width != 1080 || video.Height != 1920 {
		t.Errorf("Video resolution = %dx%d; want 1080x1920", video.Width, video.Height)
	}
}

func TestParseOutput_InvalidJSON(t *testing.T) {
	if _, err := parseOutput([]byte("not json")); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestGetDuration_Missing(t *testing.T) {
	result := &ProbeResult{}
	if _, err := result.GetDuration(); err == nil {
		t.Error("Expected error for missing duration")
	}
}

func TestGetDuration_Unparseable(t *testing.T) {
	result := &ProbeResult{Format: Format{Duration: "N/A"}}
	_, err := result.GetDuration()
	if err == nil {
		t.Error("Expected error for unparseable duration")
	}
	if !strings.Contains(err.Error(), "failed to parse duration") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}
