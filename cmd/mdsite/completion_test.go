package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        Shell
		wantContains []string
	}{
		{ShellBash, []string{"_mdsite_completions", "complete -F _mdsite_completions mdsite", "--strict-links", "--engine|-e) COMPREPLY=($(compgen -W \"builtin goldmark\"", "--content) COMPREPLY=($(compgen -d"}},
		{ShellZsh, []string{"#compdef mdsite", "_arguments", "_describe 'command' commands", "'(-e --engine)'{-e,--engine}", ":engine:(builtin goldmark)", "_files -g '*.yaml *.yml'"}},
		{ShellFish, []string{"complete -c mdsite -n __fish_mdsite_needs_command -a serve", "-l no-build", "-l engine -s e -x -a 'builtin goldmark'", "__fish_complete_directories"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, "tcsh")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("err = %v, want ErrUnsupportedShell", err)
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Flags come from the real FlagSets
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	flagsOf := map[string]map[string]flagDef{}
	for _, c := range getCommands() {
		flagsOf[c.Name] = map[string]flagDef{}
		for _, f := range c.Flags {
			flagsOf[c.Name][f.Long] = f
		}
	}

	if _, ok := flagsOf["serve"]["addr"]; !ok {
		t.Error("serve is missing --addr")
	}
	if _, ok := flagsOf["build"]["addr"]; ok {
		t.Error("build must not offer --addr")
	}
	if f := flagsOf["build"]["workers"]; f.Short != "w" || f.Kind != flagValue {
		t.Errorf("workers = %+v", f)
	}
	if f := flagsOf["build"]["drafts"]; f.Kind != flagBool {
		t.Errorf("drafts kind = %v, want flagBool", f.Kind)
	}
	if f := flagsOf["config"]["config"]; f.Kind != flagFile {
		t.Errorf("config kind = %v, want flagFile", f.Kind)
	}
}

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
	}{
		{"usage", []string{"mdsite", "completion"}, ExitSuccess, "Usage: mdsite completion"},
		{"bash", []string{"mdsite", "completion", "bash"}, ExitSuccess, "complete -F"},
		{"unsupported", []string{"mdsite", "completion", "tcsh"}, ExitUsage, ""},
		{"extra args", []string{"mdsite", "completion", "bash", "zsh"}, ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env, stdout, _ := testEnv()
			if code := runMain(context.Background(), tt.args, env); code != tt.wantCode {
				t.Errorf("exit = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
		})
	}
}
