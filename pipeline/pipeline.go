// Package pipeline sequences the four assembly stages: normalize the
// numbered clips, concatenate them, reconcile the music duration
// against the video, and mix the final output. It owns the run
// workspace lifecycle and aborts on the first fatal error.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"reelmaker/clips"
	"reelmaker/command"
	"reelmaker/command/loop"
	"reelmaker/command/mixing"
	"reelmaker/command/normalize"
	"reelmaker/concatenator"
	"reelmaker/config"
	"reelmaker/ffprobe"
	"reelmaker/internal/timeutil"
	"reelmaker/models"
	"reelmaker/orchestrator"
	"reelmaker/reconcile"
)

// Prober reports the container duration of a media file in fractional
// seconds. The production implementation shells out to ffprobe; tests
// inject canned durations.
type Prober interface {
	Duration(path string) (float64, error)
}

// EngineProber is the production Prober backed by ffprobe.
type EngineProber struct{}

func (EngineProber) Duration(path string) (float64, error) {
	return ffprobe.Duration(path)
}

// Pipeline runs the full clip-to-reel assembly.
type Pipeline struct {
	cfg    *config.Config
	runner command.Runner
	prober Prober
	logger *slog.Logger
	out    io.Writer
}

// New creates a pipeline for the given configuration. A nil runner or
// prober selects the real engine; a nil logger selects slog.Default.
func New(cfg *config.Config, runner command.Runner, prober Prober, logger *slog.Logger) *Pipeline {
	if runner == nil {
		runner = command.ExecRunner{}
	}
	if prober == nil {
		prober = EngineProber{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:    cfg,
		runner: runner,
		prober: prober,
		logger: logger,
		out:    os.Stdout,
	}
}

// SetOutput redirects progress messages (default os.Stdout).
func (p *Pipeline) SetOutput(w io.Writer) {
	p.out = w
}

// Run executes the whole pipeline. On success every intermediate
// artifact is removed (unless KeepWorkspace is set) and the final
// output exists at cfg.Output. On failure the workspace is left in
// place for inspection and its path is logged.
func (p *Pipeline) Run() error {
	startTime := time.Now()

	ws, err := NewWorkspace()
	if err != nil {
		return err
	}
	p.logger.Info("run started", "run_id", ws.RunID, "workspace", ws.Dir)

	if err := p.runStages(ws); err != nil {
		p.logger.Error("run aborted", "run_id", ws.RunID, "workspace", ws.Dir, "err", err)
		return err
	}

	// Cleanup: intermediates are only removed on the success path.
	if !p.cfg.KeepWorkspace {
		if err := ws.Remove(); err != nil {
			p.logger.Warn("failed to remove workspace", "workspace", ws.Dir, "err", err)
		}
	}

	p.printReport(startTime)
	return nil
}

// runStages executes the stage sequence inside the given workspace.
func (p *Pipeline) runStages(ws *Workspace) error {
	// STAGE 1: Normalization
	fmt.Fprintln(p.out, "🎞  Stage 1: Normalization")
	fmt.Fprintln(p.out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	results, err := p.normalizeClips(ws)
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}
	fmt.Fprintln(p.out)

	// STAGE 2: Concatenation
	fmt.Fprintln(p.out, "🔗 Stage 2: Concatenation")
	fmt.Fprintln(p.out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	concat := concatenator.NewConcatenator(ws.ManifestPath(), p.runner, p.logger)
	if err := concat.Concatenate(results, ws.ConcatPath()); err != nil {
		return fmt.Errorf("concatenation failed: %w", err)
	}
	fmt.Fprintf(p.out, "  ✓ Joined %d clips\n\n", len(results))

	// STAGE 3: Duration reconciliation
	fmt.Fprintln(p.out, "🎵 Stage 3: Music Reconciliation")
	fmt.Fprintln(p.out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	videoDuration, err := p.prober.Duration(ws.ConcatPath())
	if err != nil {
		return fmt.Errorf("failed to probe video duration: %w", err)
	}
	audioDuration, err := p.prober.Duration(p.cfg.MusicPath)
	if err != nil {
		return fmt.Errorf("failed to probe music duration: %w", err)
	}

	decision := reconcile.Reconcile(videoDuration, audioDuration, p.cfg.FadeDuration)

	fmt.Fprintf(p.out, "  Video:      %.2fs\n", videoDuration)
	fmt.Fprintf(p.out, "  Music:      %.2fs\n", audioDuration)
	if decision.NeedsLoop {
		fmt.Fprintf(p.out, "  Looping:    music repeats to %.2fs\n", decision.LoopTarget)
	} else {
		fmt.Fprintln(p.out, "  Looping:    not needed")
	}
	fmt.Fprintf(p.out, "  Fade-out:   starts at %.2fs for %.2fs\n\n", decision.FadeStart, p.cfg.FadeDuration)

	// STAGE 4: Mixing
	fmt.Fprintln(p.out, "🎬 Stage 4: Mixing")
	fmt.Fprintln(p.out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if err := p.mix(ws, decision); err != nil {
		return err
	}

	// The engine exiting zero without producing the file would
	// otherwise go unnoticed.
	if _, err := os.Stat(p.cfg.Output); err != nil {
		return fmt.Errorf("output file was not created: %w", err)
	}
	fmt.Fprintf(p.out, "  ✓ Mixed output: %s\n\n", p.cfg.Output)

	return nil
}

// normalizeClips discovers the declared sources and runs one normalize
// job per present clip through the worker pool.
func (p *Pipeline) normalizeClips(ws *Workspace) ([]*models.ClipResult, error) {
	present, missing, err := clips.Discover(p.cfg.ClipCount, p.cfg.SourceDir, ws.Dir)
	if err != nil {
		return nil, err
	}

	for _, index := range missing {
		p.logger.Warn("source clip missing, skipping", "index", fmt.Sprintf("%03d", index))
	}

	if len(present) == 0 {
		return nil, fmt.Errorf("no source clips found in %s (declared %d)", p.cfg.SourceDir, p.cfg.ClipCount)
	}

	fmt.Fprintf(p.out, "  Clips:      %d present, %d missing\n", len(present), len(missing))
	fmt.Fprintf(p.out, "  Profile:    %dx%d\n", p.cfg.Video.Width, p.cfg.Video.Height)
	fmt.Fprintf(p.out, "  Workers:    %d\n", p.cfg.Workers)

	pool := orchestrator.NewPool(p.cfg.Workers, p.runner)
	for _, clip := range present {
		builder := normalize.NewNormalizeBuilder(clip).
			SetResolution(p.cfg.Video.Width, p.cfg.Video.Height).
			SetPadColor(p.cfg.Video.PadColor)

		p.trace(builder)

		task := &orchestrator.Task{
			Index:   clip.Index,
			Command: builder,
		}
		if err := pool.AddTask(task); err != nil {
			return nil, err
		}
	}

	pool.SetProgressCallback(func(completed, total int, task *orchestrator.Task) {
		fmt.Fprintf(p.out, "\r  clip=%d/%d", completed, total)
	})

	results, err := pool.Execute()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.out, "\r  ✓ Normalized %d clips\n", len(results))
	return results, nil
}

// mix runs the optional loop sub-stage and the final mux.
func (p *Pipeline) mix(ws *Workspace, decision reconcile.Decision) error {
	audioSource := p.cfg.MusicPath

	if decision.NeedsLoop {
		looper := loop.NewLoopBuilder(p.cfg.MusicPath, ws.LoopedAudioPath(), decision.LoopTarget).
			SetCodec(p.cfg.Audio.Codec).
			SetBitrate(p.cfg.Audio.Bitrate)
		p.trace(looper)

		if err := p.runner.Run(looper); err != nil {
			return fmt.Errorf("audio looping failed: %w", err)
		}
		audioSource = ws.LoopedAudioPath()
	}

	mixer := mixing.NewMixingBuilder(ws.ConcatPath(), audioSource, p.cfg.Output).
		SetAudioCodec(p.cfg.Audio.Codec).
		SetAudioBitrate(p.cfg.Audio.Bitrate).
		SetFadeOut(decision.FadeStart, p.cfg.FadeDuration)
	p.trace(mixer)

	mixErr := p.runner.Run(mixer)

	// The looped artifact is discarded as soon as the mix has been
	// attempted, before its exit status is inspected.
	if decision.NeedsLoop {
		if err := os.Remove(ws.LoopedAudioPath()); err != nil {
			p.logger.Warn("failed to remove looped audio", "path", ws.LoopedAudioPath(), "err", err)
		}
	}

	if mixErr != nil {
		return fmt.Errorf("mixing failed: %w", mixErr)
	}
	return nil
}

// trace logs the engine command line when verbose logging is enabled.
func (p *Pipeline) trace(c command.Command) {
	if !p.cfg.Verbose {
		return
	}
	if cmdLine, err := c.DryRun(); err == nil {
		p.logger.Debug("engine command", "task", string(c.GetTaskType()), "cmd", cmdLine)
	}
}

// printReport prints the final success summary.
func (p *Pipeline) printReport(startTime time.Time) {
	elapsed := time.Since(startTime)

	var sizeText string
	if info, err := os.Stat(p.cfg.Output); err == nil {
		sizeText = humanize.Bytes(uint64(info.Size()))
	} else {
		sizeText = "unknown"
	}

	fmt.Fprintln(p.out, "═══════════════════════════════════════════════════════════")
	fmt.Fprintln(p.out, "                     ✅ DONE")
	fmt.Fprintln(p.out, "═══════════════════════════════════════════════════════════")
	fmt.Fprintf(p.out, "  Output:      %s\n", p.cfg.Output)
	fmt.Fprintf(p.out, "  Size:        %s\n", sizeText)
	fmt.Fprintf(p.out, "  Total time:  %s\n", timeutil.FormatElapsed(elapsed))
	fmt.Fprintln(p.out, "═══════════════════════════════════════════════════════════")
}
