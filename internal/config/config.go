package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/atomicstack/coderibbon/internal/app"
)

// ErrHelp is returned by LoadArgs when --help was requested.
var ErrHelp = pflag.ErrHelp

// Config captures runtime configuration for the application.
type Config struct {
	App          app.Config
	Logging      Logging
	ListCommands bool
	ConfigFile   string
	Flags        map[string]string
	Args         []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File mirrors the optional TOML configuration file.
type File struct {
	Keys    map[string][]string `toml:"keys"`
	Content FileContent         `toml:"content"`
	UI      FileUI              `toml:"ui"`
}

type FileContent struct {
	Style    string `toml:"style"`
	MaxBytes int64  `toml:"max_bytes"`
}

type FileUI struct {
	Footer *bool `toml:"footer"`
}

const (
	envRoot     = "CODERIBBON_ROOT"
	envConfig   = "CODERIBBON_CONFIG"
	envWidth    = "CODERIBBON_WIDTH"
	envHeight   = "CODERIBBON_HEIGHT"
	envFooter   = "CODERIBBON_FOOTER"
	envStyle    = "CODERIBBON_STYLE"
	envTrace    = "CODERIBBON_TRACE"
	envLogFile  = "CODERIBBON_LOG_FILE"
	envXDG      = "XDG_CONFIG_HOME"
	envHome     = "HOME"
	programName = "coderibbon"
)

type flagValues struct {
	root         *string
	configFile   *string
	width        *int
	height       *int
	footer       *bool
	style        *string
	trace        *bool
	logFile      *string
	listCommands *bool
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false
	v := flagValues{
		root:         fs.StringP("root", "r", envOrDefault(env, envRoot, "."), "directory offered by the file finder"),
		configFile:   fs.StringP("config", "c", envOrDefault(env, envConfig, ""), "path to a TOML config file"),
		width:        fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)"),
		height:       fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)"),
		footer:       fs.Bool("footer", envOrBool(env, envFooter, false), "show the key hint footer"),
		style:        fs.String("style", envOrDefault(env, envStyle, ""), "chroma style used to highlight documents"),
		trace:        fs.Bool("trace", envOrBool(env, envTrace, false), "enable JSON trace logging"),
		logFile:      fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		listCommands: fs.Bool("list-commands", false, "print the command table and exit"),
	}
	return fs, v
}

// Usage returns the flag help text.
func Usage() string {
	fs, _ := newFlagSet(nil)
	return fmt.Sprintf("Usage: %s [flags]\n\n%s", programName, fs.FlagUsages())
}

// Load parses configuration from CLI arguments, environment variables and the
// config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	fs, v := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *v.width)
	}
	if *v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *v.height)
	}

	path := *v.configFile
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath(env)
	}
	file, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	footer := *v.footer
	if !fs.Changed("footer") && !envBoolSet(env, envFooter) && file.UI.Footer != nil {
		footer = *file.UI.Footer
	}
	style := *v.style
	if style == "" {
		style = file.Content.Style
	}

	cfg := Config{
		App: app.Config{
			Root:       *v.root,
			Width:      *v.width,
			Height:     *v.height,
			ShowFooter: footer,
			Style:      style,
			MaxBytes:   file.Content.MaxBytes,
			Keys:       file.Keys,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		ListCommands: *v.listCommands,
		ConfigFile:   path,
		Flags: map[string]string{
			"root":    *v.root,
			"config":  path,
			"width":   strconv.Itoa(*v.width),
			"height":  strconv.Itoa(*v.height),
			"footer":  strconv.FormatBool(footer),
			"style":   style,
			"trace":   strconv.FormatBool(*v.trace),
			"logFile": *v.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// readFile decodes the TOML file at path. A missing file is only an error
// when the path was given explicitly.
func readFile(path string, explicit bool) (File, error) {
	var file File
	if path == "" {
		return file, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return file, nil
		}
		return file, fmt.Errorf("config file: %w", err)
	}
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return file, fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return file, fmt.Errorf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return file, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := strings.TrimSpace(env[envXDG]); dir != "" {
		return filepath.Join(dir, programName, "config.toml")
	}
	if home := strings.TrimSpace(env[envHome]); home != "" {
		return filepath.Join(home, ".config", programName, "config.toml")
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envBoolSet reports whether key holds a value envOrBool would honour.
func envBoolSet(env map[string]string, key string) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return false
	}
	_, err := strconv.ParseBool(v)
	return err == nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that can only be judged after loading.
func Validate(cfg Config) error {
	info, err := os.Stat(cfg.App.Root)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", cfg.App.Root)
	}
	if cfg.App.MaxBytes < 0 {
		return fmt.Errorf("content.max_bytes must be >= 0 (got %d)", cfg.App.MaxBytes)
	}
	return nil
}
