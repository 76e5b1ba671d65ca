package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"minaret/internal/browser"

	"github.com/pelletier/go-toml/v2"
)

const DefaultGlamourStyle = "dark"

const (
	StartLanding = "landing"
	StartBrowser = "browser"
)

var ErrInvalidStart = errors.New("start screen must be landing or browser")

type AppConfig struct {
	ConfigPath   string
	HomeURL      string
	SearchEngine string
	Search       string
	Location     string
	Start        string
	OpenExternal bool
	ExportDir    string
	LogFile      string
	LogLevel     string
	GlamourStyle string
	Bookmarks    []browser.Bookmark
}

// fileConfig is the on-disk TOML shape. Every field is optional.
type fileConfig struct {
	Home         string         `toml:"home"`
	SearchEngine string         `toml:"search_engine"`
	Start        string         `toml:"start"`
	OpenExternal *bool          `toml:"open_external"`
	ExportDir    string         `toml:"export_dir"`
	LogFile      string         `toml:"log_file"`
	LogLevel     string         `toml:"log_level"`
	GlamourStyle string         `toml:"glamour_style"`
	Bookmarks    []fileBookmark `toml:"bookmarks"`
}

type fileBookmark struct {
	Title    string `toml:"title"`
	URL      string `toml:"url"`
	Category string `toml:"category"`
}

func Default() AppConfig {
	return AppConfig{
		HomeURL:      browser.DefaultHomeURL,
		SearchEngine: browser.DefaultSearchEngine,
		Start:        StartLanding,
		LogLevel:     "info",
		GlamourStyle: DefaultGlamourStyle,
	}
}

func Parse() (AppConfig, error) {
	return ParseArgs(os.Args[1:], os.Getenv, os.Stderr)
}

// ParseArgs layers defaults, the optional TOML file and then flags.
func ParseArgs(args []string, getenv func(string) string, usage io.Writer) (AppConfig, error) {
	cfg := Default()

	fs := flag.NewFlagSet("minaret", flag.ContinueOnError)
	fs.SetOutput(usage)
	configPath := fs.String("config", "", "path to TOML config file")
	home := fs.String("home", "", "home page URL")
	engine := fs.String("search-engine", "", "search URL prefix the query is appended to")
	search := fs.String("search", "", "pre-fill the landing page search box")
	location := fs.String("location", "", "page location whose ?search= parameter pre-fills the search box")
	start := fs.String("start", "", "first screen: landing or browser")
	openExternal := fs.Bool("open-external", false, "also open every visited page in the host browser")
	exportDir := fs.String("export-dir", "", "override export output directory")
	logFile := fs.String("log-file", "", "write logs to this file")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}

	path, explicit := DetectConfigPath(*configPath, getenv)
	cfg.ConfigPath = path
	if path != "" {
		if err := cfg.loadFile(path, explicit); err != nil {
			return cfg, err
		}
	}

	setFlags := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if *home != "" {
		cfg.HomeURL = *home
	}
	if *engine != "" {
		cfg.SearchEngine = *engine
	}
	if *start != "" {
		cfg.Start = *start
	}
	if setFlags["open-external"] {
		cfg.OpenExternal = *openExternal
	}
	if *exportDir != "" {
		cfg.ExportDir = *exportDir
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	cfg.Search = *search
	cfg.Location = *location

	return cfg, cfg.validate()
}

// DetectConfigPath returns the config file to read and whether it was asked
// for explicitly. A missing implicit file is not an error.
func DetectConfigPath(explicit string, getenv func(string) string) (string, bool) {
	if explicit != "" {
		return filepath.Clean(explicit), true
	}
	if fromEnv := getenv("MINARET_CONFIG"); fromEnv != "" {
		return filepath.Clean(fromEnv), true
	}
	base := getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "minaret", "config.toml"), false
}

func (c *AppConfig) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.Home != "" {
		c.HomeURL = fc.Home
	}
	if fc.SearchEngine != "" {
		c.SearchEngine = fc.SearchEngine
	}
	if fc.Start != "" {
		c.Start = fc.Start
	}
	if fc.OpenExternal != nil {
		c.OpenExternal = *fc.OpenExternal
	}
	if fc.ExportDir != "" {
		c.ExportDir = fc.ExportDir
	}
	if fc.LogFile != "" {
		c.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.GlamourStyle != "" {
		c.GlamourStyle = fc.GlamourStyle
	}
	if len(fc.Bookmarks) > 0 {
		c.Bookmarks = make([]browser.Bookmark, 0, len(fc.Bookmarks))
		for _, b := range fc.Bookmarks {
			if strings.TrimSpace(b.URL) == "" {
				return fmt.Errorf("decode config %s: bookmark %q has no url", path, b.Title)
			}
			category := b.Category
			if category == "" {
				category = browser.DefaultCategory
			}
			title := b.Title
			if title == "" {
				title = browser.Domain(b.URL)
			}
			c.Bookmarks = append(c.Bookmarks, browser.Bookmark{Title: title, URL: b.URL, Category: category})
		}
	}
	return nil
}

func (c AppConfig) validate() error {
	if c.Start != StartLanding && c.Start != StartBrowser {
		return fmt.Errorf("%w: got %q", ErrInvalidStart, c.Start)
	}
	if !strings.HasPrefix(c.HomeURL, "http://") && !strings.HasPrefix(c.HomeURL, "https://") {
		return fmt.Errorf("home must be an http(s) url: %q", c.HomeURL)
	}
	if !strings.HasPrefix(c.SearchEngine, "http://") && !strings.HasPrefix(c.SearchEngine, "https://") {
		return fmt.Errorf("search engine must be an http(s) url prefix: %q", c.SearchEngine)
	}
	return nil
}
