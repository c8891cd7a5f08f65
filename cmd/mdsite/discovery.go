package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Sentinel errors for page discovery.
var (
	ErrNoPages            = errors.New("no markdown pages found")
	ErrContentDir         = errors.New("cannot read content directory")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// PageJob is a single page to build.
type PageJob struct {
	InputPath  string
	OutputPath string
}

// discoverPages finds every markdown file under contentDir. Output paths
// mirror the path relative to contentDir with an .html extension.
// Results are sorted by input path so runs are reproducible.
func discoverPages(contentDir, outputDir string) ([]PageJob, error) {
	if !fileutil.DirExists(contentDir) {
		return nil, fmt.Errorf("%w: %s%s", ErrContentDir, contentDir, hints.ForContentDir(contentDir))
	}

	var jobs []PageJob
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != contentDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(path) {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		jobs = append(jobs, PageJob{
			InputPath:  path,
			OutputPath: filepath.Join(outputDir, fileutil.ReplaceExt(rel, ".html")),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPages, contentDir)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].InputPath < jobs[j].InputPath })
	return jobs, nil
}

// isMarkdown checks for a .md or .markdown extension.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkerCount determines how many pages are built at once.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for
// containers), capped by the number of pages.
func resolveWorkerCount(requested, pages int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > config.MaxWorkers {
		n = config.MaxWorkers
	}
	if n > pages {
		n = pages
	}
	if n < 1 {
		n = 1
	}
	return n
}
