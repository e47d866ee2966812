package command

// Runner executes built engine jobs. The pipeline invokes every FFmpeg
// command through a Runner so the orchestration logic can be tested
// without a real media engine installed.
type Runner interface {
	Run(c Command) error
}

// ExecRunner is the production Runner: it delegates to the command's own
// Run method, which shells out to ffmpeg.
type ExecRunner struct{}

func (ExecRunner) Run(c Command) error {
	return c.Run()
}
