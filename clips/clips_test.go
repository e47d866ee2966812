package clips

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func createSources(t *testing.T, dir string, indices ...uint) {
	t.Helper()
	for _, i := range indices {
		path := filepath.Join(dir, fmt.Sprintf("%03d.mp4", i))
		if err := os.WriteFile(path, []byte("fake video"), 0644); err != nil {
			t.Fatalf("Failed to create source %s: %v", path, err)
		}
	}
}

func TestDiscover_AllPresent(t *testing.T) {
	sourceDir := t.TempDir()
	workDir := t.TempDir()
	createSources(t, sourceDir, 1, 2, 3)

	present, missing, err := Discover(3, sourceDir, workDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(present) != 3 {
		t.Fatalf("Expected 3 present clips, got %d", len(present))
	}
	if len(missing) != 0 {
		t.Errorf("Expected no missing indices, got %v", missing)
	}

	for i, clip := range present {
		if clip.Index != uint(i+1) {
			t.Errorf("Clip %d has index %d; want ascending order", i, clip.Index)
		}
	}
}

func TestDiscover_SubsetPresent(t *testing.T) {
	sourceDir := t.TempDir()
	workDir := t.TempDir()
	createSources(t, sourceDir, 1, 3)

	present, missing, err := Discover(3, sourceDir, workDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(present) != 2 {
		t.Fatalf("Expected 2 present clips, got %d", len(present))
	}
	if present[0].Index != 1 || present[1].Index != 3 {
		t.Errorf("Expected clips 1 and 3, got %d and %d", present[0].Index, present[1].Index)
	}
	if len(missing) != 1 || missing[0] != 2 {
		t.Errorf("Expected missing [2], got %v", missing)
	}
}

func TestDiscover_NonePresent(t *testing.T) {
	present, missing, err := Discover(2, t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(present) != 0 {
		t.Errorf("Expected no present clips, got %d", len(present))
	}
	if len(missing) != 2 {
		t.Errorf("Expected 2 missing indices, got %v", missing)
	}
}

func TestDiscover_ZeroCount(t *testing.T) {
	if _, _, err := Discover(0, ".", "/tmp"); err == nil {
		t.Error("Expected error for zero clip count")
	}
}
