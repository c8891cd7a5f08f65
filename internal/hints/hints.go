// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if filepath.IsAbs(p) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateNotFound lists the templates that can be used by name.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass a template path such as ./templates/page.html")
	}
	return formatHints([]string{
		"available: " + strings.Join(available, ", "),
		"or pass a path such as ./templates/page.html",
	})
}

// ForMissingPlaceholder explains what a page template must contain.
func ForMissingPlaceholder() string {
	return format("templates must contain {{ Content }} and usually {{ Title }}")
}

// ForNoTitle returns hints for pages without a level-1 heading.
func ForNoTitle() string {
	return formatHints([]string{
		`start the page with "# Title"`,
		"set title in front matter",
		"or enable build.titleFromFilename",
	})
}

// ForSyntax returns hints for unbalanced inline delimiters.
func ForSyntax(delimiter string) string {
	if delimiter == "" {
		return ""
	}
	return format("close every " + delimiter + " on the same block, or use the goldmark engine")
}

// ForContentDir returns hints when the content directory cannot be read.
func ForContentDir(dir string) string {
	return format("create " + dir + " or set content.dir / --content")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForBrokenLinks returns hints when link checking fails the build.
func ForBrokenLinks() string {
	return format("fix the targets or drop --strict-links to report them as warnings")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
