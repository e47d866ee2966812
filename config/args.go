package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// ErrUsage marks a malformed invocation. The caller prints usage text
// and exits with code 1, producing no side effects.
var ErrUsage = errors.New("usage error")

// MergeFromArgs parses command-line arguments and overrides config
// values. The positional surface is:
//
//	reelmaker [flags] <num_files> <music_path> [fade_duration]
func (c *Config) MergeFromArgs(args []string) error {
	fs := flag.NewFlagSet("reelmaker", flag.ContinueOnError)
	fs.Usage = func() { PrintUsage(os.Stderr) }

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	sourceDir := fs.String("source-dir", "", "Directory containing numbered source clips (default: from config)")
	output := fs.String("output", "", "Final output file path (default: from config)")
	workers := fs.Int("workers", -1, "Parallel normalization workers, 0 = auto-detect (default: from config)")

	keepWorkspace := fs.Bool("keep-workspace", false, "Keep the run workspace after a successful run")
	verbose := fs.Bool("verbose", false, "Log engine commands as they run")
	dryRun := fs.Bool("dry-run", false, "Show effective configuration without processing")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// Positional arguments: <num_files> <music_path> [fade_duration]
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("%w: need <num_files> and <music_path>", ErrUsage)
	}
	if len(rest) > 3 {
		return fmt.Errorf("%w: too many arguments", ErrUsage)
	}

	count, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid clip count %q", ErrUsage, rest[0])
	}
	c.ClipCount = uint(count)
	c.MusicPath = rest[1]

	if len(rest) == 3 {
		fade, err := strconv.ParseFloat(rest[2], 64)
		if err != nil {
			return fmt.Errorf("%w: invalid fade duration %q", ErrUsage, rest[2])
		}
		c.FadeDuration = fade
	}

	// Override with flag values (only if explicitly set)
	if *sourceDir != "" {
		c.SourceDir = *sourceDir
	}
	if *output != "" {
		c.Output = *output
	}
	if *workers >= 0 {
		c.Workers = *workers
	}
	if *keepWorkspace {
		c.KeepWorkspace = true
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// PrintUsage prints help text
func PrintUsage(w *os.File) {
	fmt.Fprintf(w, `reelmaker - Assemble numbered clips into one portrait video with background music

USAGE:
  reelmaker [FLAGS] <num_files> <music_path> [fade_duration]

ARGUMENTS:
  num_files
        Number of declared source clips, named 001.mp4 ... NNN.mp4
  music_path
        Background music file (looped automatically if shorter than the video)
  fade_duration
        Trailing audio fade-out in seconds, 0-10 (default: 3)

FLAGS:
  -source-dir string
        Directory containing the numbered source clips (default: current directory)
  -output string
        Final output file path (default: result.mp4)
  -workers int
        Parallel normalization workers, 0 = auto-detect CPU count
  -config string
        Path to config file (default: search ./reelmaker.yaml, ~/.reelmaker/config.yaml, /etc/reelmaker/config.yaml)
  -keep-workspace
        Keep the run workspace after a successful run
  -verbose
        Log engine commands as they run
  -dry-run
        Show effective configuration without processing

EXAMPLES:
  # Assemble 12 clips with default 3 second fade
  reelmaker 12 music.mp3

  # Custom fade and output path
  reelmaker -output reel.mp4 12 music.mp3 5

  # Sources in another directory, 4 workers
  reelmaker -source-dir ./render -workers 4 8 track.mp3

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./reelmaker.yaml
    2. ~/.reelmaker/config.yaml
    3. /etc/reelmaker/config.yaml

  Priority: CLI arguments > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Clips:          %d (from %s)\n", c.ClipCount, c.SourceDir)
	fmt.Printf("Music:          %s\n", c.MusicPath)
	fmt.Printf("Fade:           %.1f seconds\n", c.FadeDuration)
	fmt.Printf("Output:         %s\n", c.Output)
	fmt.Printf("Workers:        %d\n", c.Workers)

	fmt.Println("\nNormalization:")
	fmt.Printf("  Resolution:   %dx%d\n", c.Video.Width, c.Video.Height)
	fmt.Printf("  Pad Color:    %s\n", c.Video.PadColor)

	fmt.Println("\nAudio:")
	fmt.Printf("  Codec:        %s\n", c.Audio.Codec)
	fmt.Printf("  Bitrate:      %s\n", c.Audio.Bitrate)

	fmt.Println("\nBehavioral Flags:")
	fmt.Printf("  Keep Workspace: %v\n", c.KeepWorkspace)
	fmt.Printf("  Verbose:        %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
