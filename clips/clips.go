// Package clips discovers numbered source clips on disk and prepares
// them for normalization.
//
// Sources follow the NNN.mp4 convention: a 3-digit zero-padded sequence
// index starting at 1. A declared clip whose source file is absent is
// not an error; it is reported in the missing list so the caller can
// warn and skip it.
package clips

import (
	"fmt"
	"os"

	"reelmaker/models"
)

// Discover walks the declared index range [1, count] and splits it into
// clips whose source file exists and indices whose source is missing.
//
// Present clips are returned in ascending index order with their
// normalized-output paths rooted in workDir.
func Discover(count uint, sourceDir, workDir string) (present []*models.Clip, missing []uint, err error) {
	if count == 0 {
		return nil, nil, fmt.Errorf("clip count must be at least 1")
	}

	for i := uint(1); i <= count; i++ {
		clip, err := models.NewClip(i, sourceDir, workDir)
		if err != nil {
			return nil, nil, err
		}

		if _, err := os.Stat(clip.SourcePath); err != nil {
			missing = append(missing, i)
			continue
		}

		present = append(present, clip)
	}

	return present, missing, nil
}
