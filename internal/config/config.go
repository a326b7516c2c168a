// Package config manages YAML-based configuration, CLI flags, and multi-folder settings.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Folder represents a listed folder with an alias for display
type Folder struct {
	Path    string   `yaml:"path" json:"path"`
	Alias   string   `yaml:"alias" json:"alias"`
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// Config holds all configuration options for exa
type Config struct {
	// Legacy single path (for backward compatibility)
	Path string `yaml:"path,omitempty"`

	// Multiple folders with aliases
	Folders []Folder `yaml:"folders,omitempty" json:"folders"`

	Port       int      `yaml:"port"`
	Watch      bool     `yaml:"watch"`
	ShowHidden bool     `yaml:"show_hidden"`
	Exclude    []string `yaml:"exclude"`

	// Extensions treated as executable where the filesystem has no
	// execute bits; empty means the platform default.
	ExecutableExts []string `yaml:"executable_exts,omitempty"`

	// Internal: path to config file for saving
	configPath string
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Path:       ".",
		Port:       8080,
		Watch:      true,
		ShowHidden: false,
		Exclude:    []string{"node_modules", ".git", ".svn"},
	}
}

// GetConfigDir returns the config directory path
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/exa"
	}
	return filepath.Join(home, ".config", "exa")
}

// GetConfigPath returns the full path to the config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load loads configuration from file and command line flags
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Define command line flags with sentinel values to detect if set
	path := flag.String("path", "", "Root directory to list")
	port := flag.Int("port", 0, "HTTP server port")
	watch := flag.Bool("watch", true, "Enable file watching")
	showHidden := flag.Bool("show-hidden", false, "Include dotfiles in listings")
	configFile := flag.String("config", "", "Configuration file path")

	flag.StringVar(path, "p", "", "Root directory to list (shorthand)")

	flag.Parse()

	// Determine config file path
	var cfgPath string
	if *configFile != "" {
		cfgPath = *configFile
	} else {
		// Try ~/.config/exa/config.yaml first
		globalConfig := GetConfigPath()
		if _, err := os.Stat(globalConfig); err == nil {
			cfgPath = globalConfig
		} else {
			// Fall back to local exa.yaml
			if _, err := os.Stat("exa.yaml"); err == nil {
				cfgPath = "exa.yaml"
			}
		}
	}

	// Load from config file if found
	if cfgPath != "" {
		if err := cfg.loadFromFile(cfgPath); err != nil && *configFile != "" {
			// Only return error if user explicitly specified config file
			return nil, err
		}
		cfg.configPath = cfgPath
	} else {
		// Set default config path for saving
		cfg.configPath = GetConfigPath()
	}

	// Command line flags override config file (only if explicitly set)
	if *path != "" {
		cfg.Path = *path
		// CLI --path overrides saved folders - use CLI path exclusively
		cfg.Folders = nil
	}
	if *port != 0 {
		cfg.Port = *port
	}
	// Bool flags - use command line value (they have explicit defaults)
	cfg.Watch = *watch
	cfg.ShowHidden = *showHidden

	// Migrate legacy path to folders if needed
	cfg.migrateLegacyPath()

	return cfg, nil
}

// migrateLegacyPath converts single Path to Folders if Folders is empty
func (c *Config) migrateLegacyPath() {
	if len(c.Folders) == 0 && c.Path != "" {
		absPath, err := filepath.Abs(c.Path)
		if err != nil {
			absPath = c.Path
		}
		c.Folders = []Folder{{
			Path:  absPath,
			Alias: filepath.Base(absPath),
		}}
	}

	// Resolve all folder paths to absolute
	for i := range c.Folders {
		absPath, err := filepath.Abs(c.Folders[i].Path)
		if err == nil {
			c.Folders[i].Path = absPath
		}
		// Set alias to folder name if not specified
		if c.Folders[i].Alias == "" {
			c.Folders[i].Alias = filepath.Base(c.Folders[i].Path)
		}
	}
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Save saves the current configuration to the config file
func (c *Config) Save() error {
	// Ensure config directory exists
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	// Create a copy without internal fields for saving
	saveConfig := struct {
		Folders        []Folder `yaml:"folders,omitempty"`
		Port           int      `yaml:"port"`
		Watch          bool     `yaml:"watch"`
		ShowHidden     bool     `yaml:"show_hidden"`
		Exclude        []string `yaml:"exclude"`
		ExecutableExts []string `yaml:"executable_exts,omitempty"`
	}{
		Folders:        c.Folders,
		Port:           c.Port,
		Watch:          c.Watch,
		ShowHidden:     c.ShowHidden,
		Exclude:        c.Exclude,
		ExecutableExts: c.ExecutableExts,
	}

	data, err := yaml.Marshal(saveConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0644)
}

// AddFolder adds a new folder with the given path, alias and excludes
func (c *Config) AddFolder(path, alias string, exclude []string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// Check if folder already exists
	for _, f := range c.Folders {
		if f.Path == absPath {
			return nil // Already exists
		}
	}

	if alias == "" {
		alias = filepath.Base(absPath)
	}

	c.Folders = append(c.Folders, Folder{
		Path:    absPath,
		Alias:   alias,
		Exclude: exclude,
	})

	return nil
}

// IsFolderExcluded checks if a relative path should be excluded by folder-level excludes
func (c *Config) IsFolderExcluded(relPath string, folderExcludes []string) bool {
	if len(folderExcludes) == 0 {
		return false
	}
	for _, pattern := range folderExcludes {
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
		base := filepath.Base(relPath)
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
		clean := filepath.Clean(pattern)
		if relPath == clean || strings.HasPrefix(relPath, clean+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// RemoveFolderByIndex removes a folder by its index
func (c *Config) RemoveFolderByIndex(index int) {
	if index < 0 || index >= len(c.Folders) {
		return
	}
	c.Folders = append(c.Folders[:index], c.Folders[index+1:]...)
}

// UpdateFolderByIndex updates a folder's fields by index
func (c *Config) UpdateFolderByIndex(index int, alias string, exclude []string) {
	if index < 0 || index >= len(c.Folders) {
		return
	}
	c.Folders[index].Alias = alias
	c.Folders[index].Exclude = exclude
}

// SetGlobalExclude sets the global exclude patterns
func (c *Config) SetGlobalExclude(patterns []string) {
	c.Exclude = patterns
}

// GetConfigFilePath returns the path to the config file
func (c *Config) GetConfigFilePath() string {
	return c.configPath
}

// IsExcluded checks if a path should be excluded
func (c *Config) IsExcluded(path string) bool {
	base := filepath.Base(path)
	for _, exclude := range c.Exclude {
		if matched, _ := filepath.Match(exclude, base); matched {
			return true
		}
	}
	return false
}

// IsHidden checks if a name is a dotfile. The relative components "." and
// ".." do not count.
func (c *Config) IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
