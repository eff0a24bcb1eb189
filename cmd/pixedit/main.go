// Package main is the entry point for the pixedit editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/pxlos/pixedit/internal/config"
	"github.com/pxlos/pixedit/internal/host"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	scriptPath string
	frames     int
	outputPath string
	scale      int
	rows, cols int
	dumpState  bool
	logLevel   string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := host.NewLogger(host.ParseLogLevel(opts.logLevel), os.Stderr)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var text string
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", opts.file, err)
			return 1
		}
		text = string(data)
	}

	h, err := host.New(host.Options{
		Config: cfg,
		Logger: logger,
		Text:   text,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.scriptPath != "" {
		return runHeadless(h, opts)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdin is not a terminal; use -script for headless runs")
		return 1
	}

	// The terminal is in raw mode while running, so interrupts arrive as
	// key events. SIGTERM from outside goes through the run loop so the
	// screen is restored before exit.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM)
	interrupt := make(chan struct{})
	go func() {
		<-signals
		close(interrupt)
	}()

	err = h.RunTerminal(host.TerminalOptions{
		ConfigPath: opts.configPath,
		Interrupt:  interrupt,
	})
	if errors.Is(err, host.ErrQuit) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runHeadless(h *host.Host, opts options) int {
	err := h.RunHeadless(host.HeadlessOptions{
		ScriptPath:  opts.scriptPath,
		ExtraFrames: opts.frames,
		OutputPath:  opts.outputPath,
		Scale:       opts.scale,
		Rows:        opts.rows,
		Cols:        opts.cols,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.dumpState {
		data, err := h.DumpState()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua input script; runs headless")
	flag.IntVar(&opts.frames, "frames", 0, "Extra frames to run after the script")
	flag.StringVar(&opts.outputPath, "o", "", "Write the final frame as a PNG")
	flag.IntVar(&opts.scale, "scale", 1, "PNG upscale factor")
	flag.IntVar(&opts.rows, "rows", 0, "Headless viewport rows")
	flag.IntVar(&opts.cols, "cols", 0, "Headless viewport columns")
	flag.BoolVar(&opts.dumpState, "dump-state", false, "Print final state as JSON after a headless run")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pixedit - pixel-rendered text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pixedit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pixedit notes.txt                      Edit a file interactively\n")
		fmt.Fprintf(os.Stderr, "  pixedit -script demo.lua -o out.png    Scripted run, render a frame\n")
		fmt.Fprintf(os.Stderr, "  pixedit -script demo.lua -dump-state   Scripted run, print state JSON\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("pixedit %s (%s)\n", version, commit)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.logLevel)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}
	return opts
}

// defaultConfigPath returns the per-user config location, or empty when
// the home directory is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir + "/pixedit/config.toml"
}
