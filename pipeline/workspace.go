package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is the run-scoped directory owning every intermediate
// artifact of one pipeline run: normalized clips, the concat manifest,
// the concatenated video, and the looped-audio file. Scoping the
// artifacts to one directory lets concurrent runs coexist and makes
// cleanup a single recursive remove.
type Workspace struct {
	RunID string
	Dir   string
}

// NewWorkspace creates the run directory under the system temp dir,
// named by a fresh run ID.
func NewWorkspace() (*Workspace, error) {
	runID := uuid.NewString()
	dir := filepath.Join(os.TempDir(), "reelmaker-"+runID)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	return &Workspace{
		RunID: runID,
		Dir:   dir,
	}, nil
}

// ManifestPath returns the concat demuxer file list path.
func (w *Workspace) ManifestPath() string {
	return filepath.Join(w.Dir, "filelist.txt")
}

// ConcatPath returns the concatenated-video artifact path.
func (w *Workspace) ConcatPath() string {
	return filepath.Join(w.Dir, "temp_concat.mp4")
}

// LoopedAudioPath returns the looped-audio artifact path.
func (w *Workspace) LoopedAudioPath() string {
	return filepath.Join(w.Dir, "temp_looped_audio.m4a")
}

// Remove deletes the workspace and everything in it.
func (w *Workspace) Remove() error {
	return os.RemoveAll(w.Dir)
}
