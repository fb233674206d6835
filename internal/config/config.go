// Package config resolves the contacts configuration from JSONC files,
// the environment and command-line overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/contacts/internal/contact"
	"github.com/calvinalkan/contacts/internal/csvrec"
	"github.com/calvinalkan/contacts/internal/fs"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".contacts.json"

// EnvContactsFile overrides contacts_file from any config file.
const EnvContactsFile = "CONTACTS_FILE"

// Bounds for max_field_len.
const (
	MinFieldLen = 1
	MaxFieldLen = 1000
)

// Config holds all configuration options.
type Config struct {
	ContactsFile     string `json:"contacts_file"`
	MaxFieldLen      int    `json:"max_field_len"`
	SearchMode       string `json:"search_mode"`
	SanitizeFormulas bool   `json:"sanitize_formulas"`
	LogLevel         string `json:"log_level,omitempty"`

	// Resolved values, not serialized.
	EffectiveCwd    string  `json:"-"`
	ContactsFileAbs string  `json:"-"`
	Sources         Sources `json:"-"`
}

// Sources records where the effective values came from.
type Sources struct {
	Global  string // global config path if loaded
	Project string // project or explicit config path if loaded
	Env     bool   // CONTACTS_FILE was set
	Flag    bool   // --file was given
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ContactsFile: "contacts.csv",
		MaxFieldLen:  csvrec.DefaultMaxField,
		SearchMode:   string(contact.SearchPrefix),
	}
}

// Search returns the parsed search mode. It is only meaningful on a
// validated config.
func (c Config) Search() contact.SearchMode {
	mode, err := contact.ParseSearchMode(c.SearchMode)
	if err != nil {
		return contact.SearchPrefix
	}

	return mode
}

// fileConfig is one config file as written. Pointers distinguish unset
// keys from zero values so later files can override with false or 0.
type fileConfig struct {
	ContactsFile     *string `json:"contacts_file"`
	MaxFieldLen      *int    `json:"max_field_len"`
	SearchMode       *string `json:"search_mode"`
	SanitizeFormulas *bool   `json:"sanitize_formulas"`
	LogLevel         *string `json:"log_level"`
}

// GlobalPath returns the global config file path: $XDG_CONFIG_HOME/contacts/config.json
// if set, otherwise ~/.config/contacts/config.json. Empty if neither
// variable is available.
func GlobalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "contacts", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "contacts", "config.json")
	}

	return ""
}

// LoadInput holds the inputs for [Load].
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd; os.Getwd() when empty
	ConfigPath      string            // -c/--config
	FileOverride    string            // -f/--file; empty means no override
	Env             map[string]string // environment variables
	FS              fs.FS             // defaults to [fs.NewReal]
}

// Load resolves the configuration. Precedence, highest last:
//  1. Defaults
//  2. Global config file
//  3. Project config (.contacts.json in the working directory), or the
//     explicit -c file instead of it
//  4. CONTACTS_FILE
//  5. --file
//
// The contacts file path is resolved against the working directory.
func Load(input LoadInput) (Config, error) {
	fsys := input.FS
	if fsys == nil {
		fsys = fs.NewReal()
	}

	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	if globalPath := GlobalPath(input.Env); globalPath != "" {
		fc, loaded, err := loadFile(fsys, globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg = merge(cfg, fc)
			cfg.Sources.Global = globalPath
		}
	}

	projectPath, mustExist := filepath.Join(workDir, FileName), false
	if input.ConfigPath != "" {
		projectPath, mustExist = input.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}
	}

	fc, loaded, err := loadFile(fsys, projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg = merge(cfg, fc)
		cfg.Sources.Project = projectPath
	}

	if v, ok := input.Env[EnvContactsFile]; ok && v != "" {
		cfg.ContactsFile = v
		cfg.Sources.Env = true
	}

	if input.FileOverride != "" {
		cfg.ContactsFile = input.FileOverride
		cfg.Sources.Flag = true
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir

	cfg.ContactsFileAbs = cfg.ContactsFile
	if !filepath.IsAbs(cfg.ContactsFileAbs) {
		cfg.ContactsFileAbs = filepath.Join(workDir, cfg.ContactsFileAbs)
	}

	return cfg, nil
}

// loadFile reads one config file. A missing file is an error only when
// mustExist is set.
func loadFile(fsys fs.FS, path string, mustExist bool) (fileConfig, bool, error) {
	exists, err := fsys.Exists(path)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	if !exists {
		if mustExist {
			return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}

		return fileConfig{}, false, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	fc, err := parse(data)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	if fc.ContactsFile != nil && strings.TrimSpace(*fc.ContactsFile) == "" {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrContactsFileEmpty)
	}

	return fc, true, nil
}

func parse(data []byte) (fileConfig, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var fc fileConfig

	dec := json.NewDecoder(strings.NewReader(string(standardized)))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&fc); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return fc, nil
}

func merge(base Config, overlay fileConfig) Config {
	if overlay.ContactsFile != nil {
		base.ContactsFile = *overlay.ContactsFile
	}

	if overlay.MaxFieldLen != nil {
		base.MaxFieldLen = *overlay.MaxFieldLen
	}

	if overlay.SearchMode != nil {
		base.SearchMode = *overlay.SearchMode
	}

	if overlay.SanitizeFormulas != nil {
		base.SanitizeFormulas = *overlay.SanitizeFormulas
	}

	if overlay.LogLevel != nil {
		base.LogLevel = *overlay.LogLevel
	}

	return base
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.ContactsFile) == "" {
		return ErrContactsFileEmpty
	}

	if cfg.MaxFieldLen < MinFieldLen || cfg.MaxFieldLen > MaxFieldLen {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrMaxFieldLen, cfg.MaxFieldLen, MinFieldLen, MaxFieldLen)
	}

	if _, err := contact.ParseSearchMode(cfg.SearchMode); err != nil {
		return err
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrLogLevel, cfg.LogLevel)
	}

	return nil
}

// Format renders cfg as indented JSON, suitable for a config file.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot format config: %w", err)
	}

	return string(data), nil
}

// WriteStarter writes the default configuration to path. It refuses to
// overwrite an existing file.
func WriteStarter(fsys fs.FS, path string) error {
	exists, err := fsys.Exists(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	if exists {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	formatted, err := Format(Default())
	if err != nil {
		return err
	}

	if err := fsys.WriteFileAtomic(path, []byte(formatted+"\n"), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	return nil
}
