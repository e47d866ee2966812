package config

// Config holds all assembly pipeline configuration options
type Config struct {
	// Required fields (positional CLI arguments)
	ClipCount    uint    `yaml:"clip_count"`    // declared number of numbered clips
	MusicPath    string  `yaml:"music_path"`    // background music file
	FadeDuration float64 `yaml:"fade_duration"` // trailing fade-out, seconds

	// Paths
	SourceDir string `yaml:"source_dir"` // directory holding NNN.mp4 sources
	Output    string `yaml:"output"`     // final output file

	// Execution settings
	Workers int `yaml:"workers"` // 0 = auto-detect

	// Normalization settings
	Video VideoConfig `yaml:"video"`

	// Audio settings for looping/mixing
	Audio AudioConfig `yaml:"audio"`

	// Behavioral flags
	KeepWorkspace bool `yaml:"keep_workspace"` // keep the run workspace after success
	Verbose       bool `yaml:"verbose"`        // show engine command traces
	DryRun        bool `yaml:"dry_run"`        // show config without processing
}

// VideoConfig holds the normalization target profile
type VideoConfig struct {
	Width    int    `yaml:"width"`     // target width, e.g. 1080
	Height   int    `yaml:"height"`    // target height, e.g. 1920
	PadColor string `yaml:"pad_color"` // letterbox fill color
}

// AudioConfig holds audio re-encode settings for loop and mix stages
type AudioConfig struct {
	Codec   string `yaml:"codec"`   // e.g. "aac"
	Bitrate string `yaml:"bitrate"` // e.g. "192k"
}

// FadeDefault is the fade-out applied when no duration is given.
const FadeDefault = 3.0

// Fade durations outside this range are rejected, matching the bounds
// the upstream submission service enforces.
const (
	FadeMin = 0.0
	FadeMax = 10.0
)

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		ClipCount: 0,
		MusicPath: "",

		FadeDuration: FadeDefault,

		SourceDir: ".",
		Output:    "result.mp4",

		Workers: 0, // Auto-detect CPU count

		// Portrait reel profile
		Video: VideoConfig{
			Width:    1080,
			Height:   1920,
			PadColor: "black",
		},

		Audio: AudioConfig{
			Codec:   "aac",
			Bitrate: "192k",
		},

		KeepWorkspace: false,
		Verbose:       false,
		DryRun:        false,
	}
}
