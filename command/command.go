// Package command provides the core Command interface shared by all
// FFmpeg job builders, plus the Runner capability used to inject the
// external engine into the pipeline.
//
// All specialized builders (Normalize, Loop, Mixing) implement the
// Command interface, allowing the pipeline and the worker pool to
// process jobs agnostically.
package command

// TaskType represents the type of engine job.
type TaskType string

const (
	TaskTypeNormalize TaskType = "normalize" // Scale+pad a clip to the target profile
	TaskTypeConcat    TaskType = "concat"    // Join normalized clips, stream copy
	TaskTypeLoop      TaskType = "loop"      // Loop audio to a target duration
	TaskTypeMixing    TaskType = "mixing"    // Mux video with the music track
)

// Command represents an FFmpeg command that can be built, executed, or
// previewed.
//
// The interface supports:
//   - Command building: generate FFmpeg argument arrays
//   - Execution: run the command and handle output
//   - Preview: display the command without executing (dry run)
//   - Metadata: task identification and path information
type Command interface {
	// BuildArgs constructs and returns the FFmpeg command arguments as a
	// slice suitable for exec.Command("ffmpeg", args...).
	BuildArgs() []string

	// Run executes the FFmpeg command using exec.Command. It blocks
	// until the command completes and returns an error if the command
	// fails to execute or exits non-zero. Engine output is captured and
	// included in the error; it is not printed on success.
	Run() error

	// DryRun returns the FFmpeg command as a string without executing
	// it. Useful for debugging and verbose logging.
	DryRun() (string, error)

	// GetTaskType returns the type of job (normalize, loop, mixing).
	GetTaskType() TaskType

	// GetInputPath returns the primary input file path for this command.
	GetInputPath() string

	// GetOutputPath returns the output file path for this command.
	GetOutputPath() string
}
