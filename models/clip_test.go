package models

import (
	"path/filepath"
	"testing"
)

func TestNewClip(t *testing.T) {
	tests := []struct {
		name       string
		index      uint
		sourceDir  string
		workDir    string
		expectErr  bool
		wantSource string
		wantOutput string
	}{
		{
			name:       "first clip",
			index:      1,
			sourceDir:  ".",
			workDir:    "/tmp/work",
			wantSource: "001.mp4",
			wantOutput: filepath.Join("/tmp/work", "001_scaled.mp4"),
		},
		{
			name:       "three digit padding",
			index:      42,
			sourceDir:  "/videos",
			workDir:    "/tmp/work",
			wantSource: filepath.Join("/videos", "042.mp4"),
			wantOutput: filepath.Join("/tmp/work", "042_scaled.mp4"),
		},
		{
			name:       "index beyond three digits",
			index:      1234,
			sourceDir:  ".",
			workDir:    "/tmp/work",
			wantSource: "1234.mp4",
			wantOutput: filepath.Join("/tmp/work", "1234_scaled.mp4"),
		},
		{
			name:      "zero index rejected",
			index:     0,
			sourceDir: ".",
			workDir:   "/tmp/work",
			expectErr: true,
		},
		{
			name:      "empty source dir rejected",
			index:     1,
			sourceDir: "  ",
			workDir:   "/tmp/work",
			expectErr: true,
		},
		{
			name:      "empty work dir rejected",
			index:     1,
			sourceDir: ".",
			workDir:   "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip, err := NewClip(tt.index, tt.sourceDir, tt.workDir)

			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if clip.SourcePath != tt.wantSource {
				t.Errorf("SourcePath = %q; want %q", clip.SourcePath, tt.wantSource)
			}
			if clip.OutputPath != tt.wantOutput {
				t.Errorf("OutputPath = %q; want %q", clip.OutputPath, tt.wantOutput)
			}
		})
	}
}
