package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/preview"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built or served
	ExitGeneral = 1 // Page failures, broken links with --strict-links, unexpected errors
	ExitUsage   = 2 // Invalid flags, config, template or engine
	ExitIO      = 3 // Missing directories, permission denied, write failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Per-page failures are reported individually; the run itself is a
	// general failure even when a page failed on I/O.
	if errors.Is(err, ErrPagesFailed) || errors.Is(err, ErrBrokenLinks) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, mdsite.ErrUnknownEngine) ||
		errors.Is(err, mdsite.ErrTemplateNotFound) ||
		errors.Is(err, mdsite.ErrTemplateMissingPlaceholder) ||
		errors.Is(err, mdsite.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, fileutil.ErrUnsafeDir) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrContentDir) ||
		errors.Is(err, ErrNoPages) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, preview.ErrRootMissing) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var synErr *mdsite.SyntaxError
	switch {
	case errors.As(err, &synErr):
		return hints.ForSyntax(synErr.Delimiter)
	case errors.Is(err, mdsite.ErrNoTitle):
		return hints.ForNoTitle()
	case errors.Is(err, mdsite.ErrTemplateMissingPlaceholder):
		return hints.ForMissingPlaceholder()
	case errors.Is(err, mdsite.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.NewEmbeddedLoader().Names())
	case errors.Is(err, ErrWritePage), errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrBrokenLinks):
		return hints.ForBrokenLinks()
	}
	return ""
}
