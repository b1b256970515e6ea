package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/faultnote/internal/app"
	"github.com/atomicstack/faultnote/internal/config"
	"github.com/atomicstack/faultnote/internal/logging"
	"github.com/atomicstack/faultnote/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := probeTerminal(os.Stdin.Fd(), os.Stdout.Fd())
	events.App.Start(startupTracePayload(runtimeCfg, tty))
	if !tty.Interactive() {
		fmt.Fprintln(os.Stderr, "Error: faultnote needs an interactive terminal on stdin and stdout")
		os.Exit(1)
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalInfo records whether the form can take over the terminal.
type terminalInfo struct {
	Stdin  bool `json:"stdin"`
	Stdout bool `json:"stdout"`
}

func (t terminalInfo) Interactive() bool {
	return t.Stdin && t.Stdout
}

func probeTerminal(stdin, stdout uintptr) terminalInfo {
	return terminalInfo{
		Stdin:  term.IsTerminal(int(stdin)),
		Stdout: term.IsTerminal(int(stdout)),
	}
}

// startupTracePayload describes how the session was configured. Arguments
// and flags are already redacted by the config package; the API key itself
// is only reported as present or absent.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	mode := "demo"
	if cfg.App.APIKey != "" {
		mode = "connected"
	}
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"mode":  mode,
		"sources": map[string]string{
			"configFile": cfg.Sources.ConfigFile,
			"envFile":    cfg.Sources.EnvFile,
		},
		"notion": map[string]interface{}{
			"baseURL":      cfg.App.BaseURL,
			"version":      cfg.App.NotionVersion,
			"timeout":      cfg.App.Timeout.String(),
			"refresh":      cfg.App.Refresh.String(),
			"codeLanguage": cfg.App.CodeLanguage,
		},
		"logFile":  cfg.Logging.FilePath,
		"terminal": tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}
