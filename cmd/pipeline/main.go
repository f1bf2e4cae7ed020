package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/meeting-scribe/internal/audio"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/diarize"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/merge"
	"github.com/nguyentantai21042004/meeting-scribe/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-scribe/internal/summarize"
	"github.com/nguyentantai21042004/meeting-scribe/internal/tokens"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcribe"
	"github.com/nguyentantai21042004/meeting-scribe/internal/watcher"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	interactive := flag.Bool("interactive", false, "prompt for per-file recording details before processing")
	watch := flag.Bool("watch", false, "keep watching the input directory instead of exiting after one batch")
	flag.Parse()

	ctx := context.Background()

	// Secrets live in the environment; a .env file is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Scribe")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	proc, converter, err := buildProcessor(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	promptTemplate, err := resolvePromptTemplate(cfg, *interactive)
	if err != nil {
		log.Error(ctx, "Failed to load prompt template: %v", err)
		os.Exit(1)
	}

	if *watch {
		runWatch(ctx, cfg, proc, converter, promptTemplate, log)
		return
	}

	runBatch(ctx, cfg, proc, converter, promptTemplate, *interactive, log)
}

// buildProcessor wires the pipeline's collaborators from configuration.
// Configuration problems (unknown backends, missing credentials) are fatal
// before any file is touched.
func buildProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) (pipeline.Processor, *audio.Converter, error) {
	exec := executor.New()

	converter := audio.NewConverter(cfg.FFmpeg, exec, log)
	diarizer := diarize.New(cfg.Diarization.Command, exec, log)
	splitter := audio.NewSplitter(cfg.Diarization.MinSegment, log)

	transcriber, err := transcribe.New(cfg.Transcription, cfg.Secrets.OpenAIAPIKey, exec, log)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", pipeline.ErrConfiguration, err)
	}

	backend, err := summarize.NewBackend(cfg.Summary.Model, cfg.Secrets, log)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", pipeline.ErrConfiguration, err)
	}

	tokenLimit, err := cfg.TokenLimit(cfg.Summary.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", pipeline.ErrConfiguration, err)
	}

	estimator := tokens.NewEstimator(nil, log)
	summarizer := summarize.New(backend, estimator, log, tokenLimit, cfg.Summary.PromptOverhead)

	progress := func(stage pipeline.Stage, fraction float64) {
		log.Info(ctx, "  [%3.0f%%] %s", fraction*100, stage)
	}

	proc := pipeline.New(cfg, converter, diarizer, splitter, transcriber,
		merge.NewMerger(log), summarizer, log, progress)
	return proc, converter, nil
}

func runBatch(ctx context.Context, cfg *config.Config, proc pipeline.Processor, converter *audio.Converter, promptTemplate string, interactive bool, log logger.Logger) {
	files, err := discoverAudioFiles(cfg.Paths.Input)
	if err != nil {
		log.Error(ctx, "Failed to list input directory: %v", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		log.Info(ctx, "No audio files found in the input directory.")
		return
	}

	// Resolve every job before the first stage runs; the pipeline itself
	// never blocks on interactive input.
	jobs, err := resolveJobs(ctx, files, converter, promptTemplate, interactive)
	if err != nil {
		log.Error(ctx, "Failed to resolve recording details: %v", err)
		os.Exit(1)
	}

	summary := pipeline.RunBatch(ctx, proc, jobs, log)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Number of files processed: %d (failed: %d)", summary.Processed, summary.Failed)
	log.Info(ctx, "Total size of processed files: %.2f MB", float64(summary.TotalBytes)/(1024*1024))
	log.Info(ctx, "Total length of recordings: %s", pipeline.FormatSeconds(summary.TotalSeconds))
	log.Info(ctx, "Total time taken: %s", summary.Elapsed.Round(time.Second))
	log.Info(ctx, "========================================")
}

func runWatch(ctx context.Context, cfg *config.Config, proc pipeline.Processor, converter *audio.Converter, promptTemplate string, log logger.Logger) {
	handler := func(ctx context.Context, filePath string) error {
		job, err := resolveJob(ctx, filePath, converter, promptTemplate, false)
		if err != nil {
			return err
		}
		_, err = proc.Process(ctx, job)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s. Press Ctrl+C to stop", cfg.Paths.Input)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processed,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
