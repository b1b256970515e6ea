// Package config resolves runtime settings from flags, the environment, an
// optional .env file and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/atomicstack/faultnote/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Sources Sources
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Sources records which optional files contributed settings.
type Sources struct {
	ConfigFile string
	EnvFile    string
}

const (
	envConfigFile    = "FAULTNOTE_CONFIG"
	envEnvFile       = "FAULTNOTE_ENV_FILE"
	envAPIKey        = "API_KEY"
	envNotionAPIKey  = "NOTION_API_KEY"
	envBaseURL       = "FAULTNOTE_BASE_URL"
	envNotionVersion = "FAULTNOTE_NOTION_VERSION"
	envTimeout       = "FAULTNOTE_TIMEOUT"
	envCodeLanguage  = "FAULTNOTE_CODE_LANGUAGE"
	envTarget        = "FAULTNOTE_TARGET"
	envRefresh       = "FAULTNOTE_REFRESH"
	envNoColor       = "NO_COLOR"
	envTrace         = "FAULTNOTE_TRACE"
	envLogFile       = "FAULTNOTE_LOG_FILE"

	defaultEnvFile       = ".env"
	defaultBaseURL       = "https://api.notion.com"
	defaultNotionVersion = "2022-06-28"
	defaultTimeout       = 30 * time.Second
	defaultCodeLanguage  = "rust"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("faultnote", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	fs.String("config", "", "path to a YAML config file")
	fs.String("env-file", defaultEnvFile, "path to a dotenv file (empty disables; the default is skipped when missing)")
	fs.String("api-key", "", "Notion integration token")
	fs.String("base-url", defaultBaseURL, "Notion API base URL")
	fs.String("notion-version", defaultNotionVersion, "Notion-Version header value")
	fs.Duration("timeout", defaultTimeout, "deadline for a single Notion request")
	fs.String("code-language", defaultCodeLanguage, "language tag for submitted code blocks")
	fs.String("target", "", "preselect the page whose title best matches this text")
	fs.Duration("refresh", 0, "reload the page list at this interval (0 disables)")
	fs.Bool("no-color", false, "disable colour output")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
	return fs
}

// Usage returns the flag help text.
func Usage() string {
	return "Usage: faultnote [flags]\n\n" + newFlagSet().FlagUsages()
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if extra := fs.Args(); len(extra) > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", extra[0])
	}

	var err error
	envFile, explicit := pick(fs, env, "env-file", envEnvFile)
	loadedEnvFile := ""
	if strings.TrimSpace(envFile) != "" {
		if loadedEnvFile, err = mergeEnvFile(env, envFile, explicit); err != nil {
			return Config{}, err
		}
	}

	configPath, _ := pick(fs, env, "config", envConfigFile)
	var file fileConfig
	if configPath != "" {
		if file, err = readFile(configPath); err != nil {
			return Config{}, err
		}
	}

	r := resolver{fs: fs, env: env}
	apiKey := r.str("api-key", file.APIKey, envAPIKey, envNotionAPIKey)
	baseURL := r.str("base-url", file.BaseURL, envBaseURL)
	version := r.str("notion-version", file.NotionVersion, envNotionVersion)
	language := r.str("code-language", file.CodeLanguage, envCodeLanguage)
	target := r.str("target", file.Target, envTarget)
	logFile := r.str("log-file", file.LogFile, envLogFile)
	timeout, err := r.duration("timeout", file.Timeout, envTimeout)
	if err != nil {
		return Config{}, err
	}
	refresh, err := r.duration("refresh", file.Refresh, envRefresh)
	if err != nil {
		return Config{}, err
	}
	noColor := r.boolean("no-color", file.NoColor, envNoColor)
	trace := r.boolean("trace", file.Trace, envTrace)

	cfg := Config{
		App: app.Config{
			APIKey:        apiKey,
			BaseURL:       baseURL,
			NotionVersion: version,
			Timeout:       timeout,
			CodeLanguage:  language,
			Target:        target,
			Refresh:       refresh,
			NoColor:       noColor,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Sources: Sources{
			ConfigFile: configPath,
			EnvFile:    loadedEnvFile,
		},
		Flags: map[string]string{
			"config":        configPath,
			"envFile":       loadedEnvFile,
			"apiKey":        redact(apiKey),
			"baseURL":       baseURL,
			"notionVersion": version,
			"timeout":       timeout.String(),
			"codeLanguage":  language,
			"target":        target,
			"refresh":       refresh.String(),
			"noColor":       strconv.FormatBool(noColor),
			"trace":         strconv.FormatBool(trace),
			"logFile":       logFile,
		},
		Args: redactArgs(args),
	}

	return cfg, nil
}

// pick returns a flag value when the flag was given, otherwise the env value,
// otherwise the flag default. The bool reports whether the value was explicit.
func pick(fs *pflag.FlagSet, env map[string]string, name, key string) (string, bool) {
	if fs.Changed(name) {
		v, _ := fs.GetString(name)
		return v, true
	}
	if v, ok := env[key]; ok {
		return v, true
	}
	v, _ := fs.GetString(name)
	return v, false
}

// mergeEnvFile adds dotenv entries that the process environment does not
// already define. A missing default file is not an error.
func mergeEnvFile(env map[string]string, path string, explicit bool) (string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return "", nil
		}
		return "", fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return path, nil
}

type resolver struct {
	fs  *pflag.FlagSet
	env map[string]string
}

func (r resolver) str(name, fromFile string, keys ...string) string {
	if r.fs.Changed(name) {
		v, _ := r.fs.GetString(name)
		return v
	}
	for _, key := range keys {
		if v, ok := r.env[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	if fromFile != "" {
		return fromFile
	}
	v, _ := r.fs.GetString(name)
	return v
}

func (r resolver) duration(name, fromFile, key string) (time.Duration, error) {
	if r.fs.Changed(name) {
		return r.fs.GetDuration(name)
	}
	if v := envOrDefault(r.env, key, ""); strings.TrimSpace(v) != "" {
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return parsed, nil
	}
	if fromFile != "" {
		parsed, err := time.ParseDuration(fromFile)
		if err != nil {
			return 0, fmt.Errorf("config %s: %w", name, err)
		}
		return parsed, nil
	}
	return r.fs.GetDuration(name)
}

func (r resolver) boolean(name string, fromFile *bool, key string) bool {
	if r.fs.Changed(name) {
		v, _ := r.fs.GetBool(name)
		return v
	}
	if key == envNoColor {
		if v, ok := r.env[key]; ok && v != "" {
			return true
		}
	} else if v, ok := r.env[key]; ok && strings.TrimSpace(v) != "" {
		return envOrBool(r.env, key, false)
	}
	if fromFile != nil {
		return *fromFile
	}
	v, _ := r.fs.GetBool(name)
	return v
}

// redactArgs copies args with any --api-key value replaced, in both the
// "--api-key X" and "--api-key=X" forms.
func redactArgs(args []string) []string {
	out := append([]string(nil), args...)
	for i := 0; i < len(out); i++ {
		arg := out[i]
		if arg == "--" {
			break
		}
		switch {
		case arg == "--api-key":
			if i+1 < len(out) {
				out[i+1] = redact(out[i+1])
				i++
			}
		case strings.HasPrefix(arg, "--api-key="):
			out[i] = "--api-key=" + redact(strings.TrimPrefix(arg, "--api-key="))
		}
	}
	return out
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "<set>"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits. --help prints usage and exits 0.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(os.Stderr, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", cfg.App.Timeout)
	}
	if cfg.App.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", cfg.App.Refresh)
	}
	u, err := url.Parse(cfg.App.BaseURL)
	if err != nil {
		return fmt.Errorf("base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url must be an absolute http(s) URL (got %q)", cfg.App.BaseURL)
	}
	return nil
}
