package config

import (
	"os"
	"path/filepath"

	"github.com/assist-sh/assist/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FilesystemAccess restricts which paths the filesystem tools may touch.
// Patterns are doublestar globs matched against the path the model supplies.
type FilesystemAccess struct {
	Hidden   []string `yaml:"hidden"`
	ReadOnly []string `yaml:"read_only"`
}

// MCPServer describes an external MCP tool server to launch as a subprocess.
type MCPServer struct {
	Name    string   `yaml:"name"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Toolset is a named list of tool names. Assistants ship built-in toolsets;
// a config entry with the same name replaces the built-in one.
type Toolset struct {
	Name  string   `yaml:"name"`
	Tools []string `yaml:"tools"`
}

type Config struct {
	LLMClient            string           `yaml:"llm"`
	Model                string           `yaml:"model"`
	Toolsets             []Toolset        `yaml:"toolsets"`
	AdditionalMCPServers []MCPServer      `yaml:"additional_mcp_servers"`
	AllowedCommands      []string         `yaml:"allowed_commands"`
	FilesystemAccess     FilesystemAccess `yaml:"filesystem_access"`
}

// LoadConfig loads configuration from the user's home directory and the
// current working directory, with the latter taking precedence. A .env file
// in the working directory is loaded first so provider API keys can live
// next to the project instead of the shell profile.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; keys may already be exported.
	_ = godotenv.Load()

	cfg := &Config{}

	// The assistant's own state directory is never shown to the model.
	cfg.FilesystemAccess.Hidden = append(cfg.FilesystemAccess.Hidden, ".assist", ".assist/**")

	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, ".assist", "config.yaml")
		if _, err := os.Stat(userConfigPath); err == nil {
			if err := loadFromFile(userConfigPath, cfg); err != nil {
				return nil, errors.Wrapf(err, "error loading user config")
			}
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrapf(err, "could not get working directory")
	}
	projectConfigPath := filepath.Join(wd, ".assist", "config.yaml")
	if _, err := os.Stat(projectConfigPath); err == nil {
		if err := loadFromFile(projectConfigPath, cfg); err != nil {
			return nil, errors.Wrapf(err, "error loading project config")
		}
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Unmarshal overwrites fields present in the YAML, which gives a simple
	// merge where project-level config replaces user-level values.
	return yaml.Unmarshal(data, cfg)
}

// GetToolset finds a toolset override by name. The boolean reports whether
// the config declares one; callers fall back to the assistant's built-in
// toolset otherwise.
func (c *Config) GetToolset(name string) (*Toolset, bool) {
	for i := range c.Toolsets {
		if c.Toolsets[i].Name == name {
			return &c.Toolsets[i], true
		}
	}
	return nil, false
}
