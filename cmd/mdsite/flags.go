package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/config"
)

// ErrUsage wraps flag parsing failures. flag.ErrHelp is passed through.
var ErrUsage = errors.New("invalid usage")

// parseError wraps err with ErrUsage unless help was requested.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags locate the site directories and rendering choices.
type siteFlags struct {
	content     string
	static      string
	output      string
	template    string
	templateDir string
	engine      string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common            commonFlags
	site              siteFlags
	workers           int
	strictLinks       bool
	titleFromFilename bool
	drafts            bool

	set *flag.FlagSet // to ask which flags were given explicitly
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	build   buildFlags
	addr    string
	noBuild bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds directory and rendering flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "directory of markdown pages")
	fs.StringVar(&f.static, "static", "", "directory copied verbatim into the output")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (cleaned before each build)")
	fs.StringVarP(&f.template, "template", "t", "", "page template name or path")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory searched for template names first")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: builtin, goldmark")
}

// addBuildFlags adds build flags to a FlagSet.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.strictLinks, "strict-links", false, "fail the build on broken links")
	fs.BoolVar(&f.titleFromFilename, "title-from-filename", false, "derive missing titles from file names")
	fs.BoolVar(&f.drafts, "drafts", false, "also publish pages marked draft")
	f.set = fs
}

// addServeFlags adds serve flags, a superset of build flags, to a FlagSet.
func addServeFlags(fs *flag.FlagSet, f *serveFlags) {
	addBuildFlags(fs, &f.build)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (host:port)")
	fs.BoolVar(&f.noBuild, "no-build", false, "serve the output directory as is")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &buildFlags{}
	addBuildFlags(fs, f)
	fs.Usage = func() { printBuildUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags. Serve accepts every build flag
// because it builds before serving unless --no-build is given.
func parseServeFlags(args []string, env *Environment) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &serveFlags{}
	addServeFlags(fs, f)
	fs.Usage = func() { printServeUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, env *Environment) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)
	fs.Usage = func() { printConfigUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, parseError(err)
	}
	return f, nil
}

// mergeFlags copies explicitly given flags over config values (CLI wins).
func mergeFlags(f *buildFlags, cfg *config.Config) {
	changed := func(name string) bool { return f.set != nil && f.set.Changed(name) }

	if changed("content") {
		cfg.Content.Dir = f.site.content
	}
	if changed("static") {
		cfg.Static.Dir = f.site.static
	}
	if changed("output") {
		cfg.Output.Dir = f.site.output
	}
	if changed("template") {
		cfg.Template = f.site.template
	}
	if changed("template-dir") {
		cfg.Templates.Dir = f.site.templateDir
	}
	if changed("engine") {
		cfg.Engine = f.site.engine
	}
	if changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if changed("strict-links") {
		cfg.Build.StrictLinks = f.strictLinks
	}
	if changed("title-from-filename") {
		cfg.Build.TitleFromFilename = f.titleFromFilename
	}
}
