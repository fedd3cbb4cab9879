package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/term"

	"github.com/atomicstack/coderibbon/internal/app"
	"github.com/atomicstack/coderibbon/internal/config"
	"github.com/atomicstack/coderibbon/internal/logging"
	"github.com/atomicstack/coderibbon/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if runtimeCfg.ListCommands {
		if err := app.ListCommands(os.Stdout, runtimeCfg.App); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logging.TraceEnabled() {
		events.App.Start(newStartupInfo(runtimeCfg, terminalSources()))
	}

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupInfo is the app.start trace payload.
type startupInfo struct {
	Args         []string `json:"argv"`
	Root         string   `json:"root"`
	ConfigFile   string   `json:"config_file,omitempty"`
	ConfigFound  bool     `json:"config_found"`
	KeyOverrides int      `json:"key_overrides"`
	Unbound      []string `json:"unbound,omitempty"`
	Style        string   `json:"style,omitempty"`
	MaxBytes     int64    `json:"max_bytes,omitempty"`
	Footer       bool     `json:"footer"`
	Viewport     viewport `json:"viewport"`
	LogFile      string   `json:"log_file,omitempty"`
}

// viewport records the size the ribbon will first be drawn at and where it
// came from: "flags", a descriptor name, or "unknown".
type viewport struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
}

type terminalSource struct {
	name string
	size func() (int, int, bool)
}

func terminalSources() []terminalSource {
	sizeOf := func(f *os.File) func() (int, int, bool) {
		return func() (int, int, bool) {
			fd := int(f.Fd())
			if !term.IsTerminal(fd) {
				return 0, 0, false
			}
			w, h, err := term.GetSize(fd)
			return w, h, err == nil
		}
	}
	return []terminalSource{
		{"stdout", sizeOf(os.Stdout)},
		{"stdin", sizeOf(os.Stdin)},
	}
}

func newStartupInfo(cfg config.Config, sources []terminalSource) startupInfo {
	root := cfg.App.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	info := startupInfo{
		Args:         cfg.Args,
		Root:         root,
		ConfigFile:   cfg.ConfigFile,
		KeyOverrides: len(cfg.App.Keys),
		Style:        cfg.App.Style,
		MaxBytes:     cfg.App.MaxBytes,
		Footer:       cfg.App.ShowFooter,
		Viewport:     resolveViewport(cfg.App.Width, cfg.App.Height, sources),
		LogFile:      cfg.Logging.FilePath,
	}
	if cfg.ConfigFile != "" {
		_, err := os.Stat(cfg.ConfigFile)
		info.ConfigFound = err == nil
	}
	for id, keys := range cfg.App.Keys {
		if len(keys) == 0 {
			info.Unbound = append(info.Unbound, id)
		}
	}
	sort.Strings(info.Unbound)
	return info
}

// resolveViewport fills whichever dimension was not fixed on the command line
// from the first source that reports a terminal.
func resolveViewport(width, height int, sources []terminalSource) viewport {
	if width > 0 && height > 0 {
		return viewport{Width: width, Height: height, Source: "flags"}
	}
	for _, src := range sources {
		w, h, ok := src.size()
		if !ok {
			continue
		}
		if width > 0 {
			w = width
		}
		if height > 0 {
			h = height
		}
		return viewport{Width: w, Height: h, Source: src.name}
	}
	return viewport{Width: width, Height: height, Source: "unknown"}
}
