package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"reelmaker/config"
	"reelmaker/pipeline"
)

func main() {
	// Step 1: Load configuration (CLI arguments > config file > defaults)
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintf(os.Stderr, "❌ %v\n\n", err)
			config.PrintUsage(os.Stderr)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Handle dry-run mode
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		fmt.Println("\n✓ Configuration is valid. No processing will be performed.")
		return
	}

	// Step 3: Set up the diagnostic logger
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	)

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  REELMAKER - PIPELINE START                    ║")
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Printf("Clips:  %d (from %s)\n", cfg.ClipCount, cfg.SourceDir)
	fmt.Printf("Music:  %s\n", cfg.MusicPath)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println()

	// Step 4: Run the assembly pipeline
	p := pipeline.New(cfg, nil, nil, logger)
	if err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "\n❌ Pipeline error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Assembly completed successfully!")
}
