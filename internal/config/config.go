// Package config loads and validates the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// AppDir is the directory under the user config dir searched for named configs.
const AppDir = "go-mdsite"

// Limits enforced by Validate.
const (
	MaxPathLength = 4096
	MaxWorkers    = 32
)

// Defaults used by DefaultConfig.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
	DefaultServeAddr  = "127.0.0.1:8888"
)

// Config holds all configuration for building and serving a site.
type Config struct {
	Content   DirConfig   `yaml:"content"`
	Static    DirConfig   `yaml:"static"`
	Output    DirConfig   `yaml:"output"`
	Templates DirConfig   `yaml:"templates"` // searched for template names before the embedded set
	Template  string      `yaml:"template"`  // template name or path (empty = embedded default)
	Engine    string      `yaml:"engine"`    // "builtin" or "goldmark"
	Build     BuildConfig `yaml:"build"`
	Serve     ServeConfig `yaml:"serve"`
}

// DirConfig names a directory.
type DirConfig struct {
	Dir string `yaml:"dir"`
}

// BuildConfig tunes the build command.
type BuildConfig struct {
	Workers           int  `yaml:"workers"`           // 0 = derive from GOMAXPROCS
	StrictLinks       bool `yaml:"strictLinks"`       // broken links fail the build
	TitleFromFilename bool `yaml:"titleFromFilename"` // pages without "# " fall back to the file name
}

// ServeConfig tunes the preview server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content: DirConfig{Dir: DefaultContentDir},
		Static:  DirConfig{Dir: DefaultStaticDir},
		Output:  DirConfig{Dir: DefaultOutputDir},
		Engine:  pipeline.EngineBuiltin,
		Serve:   ServeConfig{Addr: DefaultServeAddr},
	}
}

// Validate checks every field and rejects an output directory that would
// wipe the content or static directory when cleaned.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Content),
		validation.Field(&c.Static),
		validation.Field(&c.Output),
		validation.Field(&c.Templates),
		validation.Field(&c.Template, validation.Length(0, MaxPathLength)),
		validation.Field(&c.Engine, validation.In(toAny(pipeline.Engines)...)),
		validation.Field(&c.Build),
		validation.Field(&c.Serve),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	if err := validation.Validate(c.Content.Dir, validation.Required); err != nil {
		return fmt.Errorf("%w: content.dir: %v", ErrConfigInvalid, err)
	}
	if err := validation.Validate(c.Output.Dir, validation.Required); err != nil {
		return fmt.Errorf("%w: output.dir: %v", ErrConfigInvalid, err)
	}

	for _, src := range []string{c.Content.Dir, c.Static.Dir} {
		if src != "" && samePath(src, c.Output.Dir) {
			return fmt.Errorf("%w: output.dir %q overlaps source directory %q", ErrConfigInvalid, c.Output.Dir, src)
		}
	}
	return nil
}

// Validate implements validation.Validatable.
func (d DirConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Dir, validation.Length(0, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (b BuildConfig) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	)
}

// Validate implements validation.Validatable.
func (s ServeConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Addr, validation.Required, validation.By(func(value any) error {
			if _, _, err := net.SplitHostPort(value.(string)); err != nil {
				return validation.NewError("serve.addr.invalid", "must be host:port")
			}
			return nil
		})),
	)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = ResolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory first, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// ResolveConfigPath returns the first existing file from SearchPaths.
func ResolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// Dump renders cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}
