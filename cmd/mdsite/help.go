package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render markdown pages into a static site")
	fmt.Fprintln(w, "  serve      Build, then serve the site locally")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printSiteFlags prints the flags shared by build and serve.
func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --content <dir>       Markdown pages (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Copied verbatim into the output (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory, cleaned first (default: public)")
	fmt.Fprintln(w, "  -t, --template <s>        Page template name or path (default: embedded)")
	fmt.Fprintln(w, "      --template-dir <dir>  Directory searched for template names first")
	fmt.Fprintln(w, "  -e, --engine <s>          Markdown engine: builtin, goldmark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --strict-links        Fail on broken relative links")
	fmt.Fprintln(w, "      --title-from-filename Use the file name when a page has no title")
	fmt.Fprintln(w, "      --drafts              Publish pages with draft: true")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printCommonFlags prints config and output control flags.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clean the output directory, copy static files, and render every")
	fmt.Fprintln(w, ".md/.markdown page under the content directory into the page template.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, then serve the output directory until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default: 127.0.0.1:8888)")
	fmt.Fprintln(w, "      --no-build            Serve the output directory as is")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration that build would use, as YAML.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
