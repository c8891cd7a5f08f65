package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagKind drives how a flag value is completed.
type flagKind int

const (
	flagValue flagKind = iota // free-form value
	flagBool
	flagEnum
	flagFile
	flagDir
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Kind     flagKind
	Desc     string
	Values   []string // flagEnum
	FileGlob string   // flagFile, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// completionMeta holds what the FlagSet cannot say about a flag value.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

var flagCompletionMeta = map[string]completionMeta{
	"engine":       {Values: pipeline.Engines},
	"config":       {FileGlob: "*.yaml,*.yml"},
	"template":     {FileGlob: "*.html"},
	"content":      {IsDir: true},
	"template-dir": {IsDir: true},
	"static":       {IsDir: true},
	"output":       {IsDir: true},
}

// extractFlags converts a FlagSet into completion definitions, so the
// scripts never drift from the real flags.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}
		if f.Value.Type() == "bool" {
			fd.Kind = flagBool
		}
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Kind, fd.Values = flagEnum, meta.Values
			case meta.FileGlob != "":
				fd.Kind, fd.FileGlob = flagFile, meta.FileGlob
			case meta.IsDir:
				fd.Kind = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	buildSet := flag.NewFlagSet("build", flag.ContinueOnError)
	addBuildFlags(buildSet, &buildFlags{})
	serveSet := flag.NewFlagSet("serve", flag.ContinueOnError)
	addServeFlags(serveSet, &serveFlags{})
	configSet := flag.NewFlagSet("config", flag.ContinueOnError)
	addCommonFlags(configSet, &commonFlags{})

	return []commandDef{
		{Name: "build", Desc: "Render markdown pages into a static site", Flags: extractFlags(buildSet)},
		{Name: "serve", Desc: "Build, then serve the site locally", Flags: extractFlags(serveSet)},
		{Name: "config", Desc: "Print the effective configuration", Flags: extractFlags(configSet)},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes a completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(cmds)
	case ShellZsh:
		script = zshScript(cmds)
	case ShellFish:
		script = fishScript(cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, args[1:])
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for bash, zsh or fish.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(mdsite completion bash)\"  # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   eval \"$(mdsite completion zsh)\"   # in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:  mdsite completion fish > ~/.config/fish/completions/mdsite.fish")
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// bashScript completes commands, flags and flag values with compgen.
func bashScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for mdsite\n")
	b.WriteString("_mdsite_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n    fi\n\n")

	b.WriteString("    case \"$prev\" in\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] || (f.Kind != flagEnum && f.Kind != flagFile && f.Kind != flagDir) {
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			switch f.Kind {
			case flagEnum:
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", pattern, strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", pattern)
			case flagDir:
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", pattern)
			}
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Flags) > 0 {
			fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", c.Name, flagWords(c.Flags))
		}
	}
	fmt.Fprintf(&b, "        help) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", commandNames(cmds))
	fmt.Fprintf(&b, "        completion) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", "bash zsh fish")
	b.WriteString("    esac\n}\n")
	b.WriteString("complete -F _mdsite_completions mdsite\n")
	return b.String()
}

// zshScript uses _arguments per command and _describe for commands.
func zshScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef mdsite\n\n")
	b.WriteString("_mdsite() {\n")
	b.WriteString("    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n        return\n    fi\n\n")
	b.WriteString("    case \"$words[2]\" in\n")
	for _, c := range cmds {
		switch {
		case len(c.Flags) > 0:
			fmt.Fprintf(&b, "        %s)\n            _arguments \\\n", c.Name)
			for i, f := range c.Flags {
				sep := " \\\n"
				if i == len(c.Flags)-1 {
					sep = "\n"
				}
				fmt.Fprintf(&b, "                %s%s", zshFlagSpec(f), sep)
			}
			b.WriteString("            ;;\n")
		case c.Name == "help":
			b.WriteString("        help) _describe 'command' commands ;;\n")
		case c.Name == "completion":
			b.WriteString("        completion) _values 'shell' bash zsh fish ;;\n")
		}
	}
	b.WriteString("    esac\n}\n\n")
	b.WriteString("compdef _mdsite mdsite\n")
	return b.String()
}

func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Kind {
	case flagBool:
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		action = ":" + f.Long + ":_files -g '" + strings.Join(globs, " ") + "'"
	case flagDir:
		action = ":" + f.Long + ":_directories"
	default:
		action = ":" + f.Long + ":"
	}
	desc := "[" + zshEscape(f.Desc) + "]"
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s%s%s'", f.Long, desc, action)
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// fishScript declares one complete line per command and flag.
func fishScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for mdsite\n")
	b.WriteString("function __fish_mdsite_needs_command\n")
	b.WriteString("    test (count (commandline -opc)) -eq 1\nend\n\n")
	b.WriteString("function __fish_mdsite_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = \"$argv[1]\"\nend\n\n")
	b.WriteString("complete -c mdsite -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c mdsite -n __fish_mdsite_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}
	for _, c := range cmds {
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c mdsite -n '__fish_mdsite_using_command %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Kind {
			case flagEnum:
				fmt.Fprintf(&b, " -x -a %s", fishQuote(strings.Join(f.Values, " ")))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			case flagValue:
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Desc))
		}
	}
	b.WriteString("complete -c mdsite -n '__fish_mdsite_using_command completion' -a 'bash zsh fish'\n")
	return b.String()
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
