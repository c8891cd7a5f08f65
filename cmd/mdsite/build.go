package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for the build command.
var (
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrPagesFailed    = errors.New("some pages failed to build")
	ErrBrokenLinks    = errors.New("broken links found")
	ErrOutputDir      = errors.New("cannot prepare output directory")
)

// runBuild parses build flags and builds the site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, positional)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	_, err = buildSite(ctx, cfg, flags, env)
	return err
}

// loadConfig loads the config named by --config (or the defaults), merges
// explicit flags over it and validates the result.
func loadConfig(flags *buildFlags) (*config.Config, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildStats summarizes a finished build.
type buildStats struct {
	Pages  ResultSummary
	Static fileutil.CopyStats
	Broken []pipeline.BrokenLink
}

// buildSite publishes cfg.Content.Dir into cfg.Output.Dir: the output is
// cleaned, the static directory copied, then every page converted.
// Page failures are all reported before the build fails.
func buildSite(ctx context.Context, cfg *config.Config, flags *buildFlags, env *Environment) (*buildStats, error) {
	log := env.Logger(flags.common)
	start := env.Now()

	conv, err := newConverter(cfg)
	if err != nil {
		return nil, err
	}

	jobs, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	log.Debug("discovered pages", "count", len(jobs), "content", cfg.Content.Dir)

	if err := fileutil.CleanDir(cfg.Output.Dir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputDir, err)
	}

	stats := &buildStats{}
	stats.Static, err = copyStatic(cfg.Static.Dir, cfg.Output.Dir, log)
	if err != nil {
		return nil, err
	}

	workers := resolveWorkerCount(cfg.Build.Workers, len(jobs))
	log.Debug("building", "workers", workers, "engine", cfg.Engine)

	results := convertBatch(ctx, conv, jobs, buildOptions{workers: workers, drafts: flags.drafts})
	stats.Pages = printResults(results, flags.common.quiet, flags.common.verbose, env.Stdout, env.Stderr)

	stats.Broken, err = checkLinks(results, cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	for _, b := range stats.Broken {
		log.Warn("broken link", "page", b.Page, "tag", b.Tag, "target", b.Target)
	}

	if !flags.common.quiet {
		printSummary(env, stats, env.Now().Sub(start))
	}

	if stats.Pages.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrPagesFailed, stats.Pages.Failed, len(jobs))
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if len(stats.Broken) > 0 && cfg.Build.StrictLinks {
		return stats, fmt.Errorf("%w: %d%s", ErrBrokenLinks, len(stats.Broken), hintFor(ErrBrokenLinks))
	}
	return stats, nil
}

// newConverter creates the page converter described by cfg.
func newConverter(cfg *config.Config) (*mdsite.Converter, error) {
	opts := []mdsite.Option{
		mdsite.WithEngine(cfg.Engine),
		mdsite.WithTemplate(cfg.Template),
		mdsite.WithTemplateDir(cfg.Templates.Dir),
	}
	if cfg.Build.TitleFromFilename {
		opts = append(opts, mdsite.WithTitleFallback(mdsite.TitleFromFilename))
	}
	conv, err := mdsite.NewConverter(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hintFor(err))
	}
	return conv, nil
}

// copyStatic copies dir into out. A missing static directory is not an
// error: many sites have none.
func copyStatic(dir, out string, log *slog.Logger) (fileutil.CopyStats, error) {
	if dir == "" {
		return fileutil.CopyStats{}, nil
	}
	if !fileutil.DirExists(dir) {
		log.Debug("no static directory", "dir", dir)
		return fileutil.CopyStats{}, nil
	}

	stats, err := fileutil.CopyDir(dir, out)
	if err != nil {
		return stats, err
	}
	log.Info("copied static files", "dir", dir, "files", stats.Files, "size", humanize.Bytes(uint64(stats.Bytes)))
	return stats, nil
}

// checkLinks scans every written page for relative links to missing files.
func checkLinks(results []PageResult, outputDir string) ([]pipeline.BrokenLink, error) {
	var broken []pipeline.BrokenLink
	for _, r := range results {
		if r.Err != nil || r.Skipped {
			continue
		}
		content, err := os.ReadFile(r.OutputPath) // #nosec G304 -- page written by this build
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWritePage, err)
		}
		found, err := pipeline.FindBrokenLinks(string(content), r.OutputPath, outputDir)
		if err != nil {
			return nil, err
		}
		broken = append(broken, found...)
	}
	return broken, nil
}

// printSummary writes the closing line of a build.
func printSummary(env *Environment, s *buildStats, elapsed time.Duration) {
	fmt.Fprintf(env.Stdout, "\n%d built, %d failed, %d skipped (%s)",
		s.Pages.Succeeded, s.Pages.Failed, s.Pages.Skipped, humanize.Bytes(uint64(s.Pages.Bytes)))
	if s.Static.Files > 0 {
		fmt.Fprintf(env.Stdout, "; %d static files (%s)", s.Static.Files, humanize.Bytes(uint64(s.Static.Bytes)))
	}
	if len(s.Broken) > 0 {
		fmt.Fprintf(env.Stdout, "; %d broken links", len(s.Broken))
	}
	fmt.Fprintf(env.Stdout, " in %v\n", elapsed.Round(time.Millisecond))
}
