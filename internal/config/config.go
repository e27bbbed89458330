// Package config loads and validates rota.yml. Configuration is read once at
// startup and threaded explicitly into the store and protocol - nothing in
// the core reads ambient process state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rotaboard/rota/internal/calendar"
)

// boardNamePattern restricts board names to Redis-key-safe identifiers.
var boardNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// weekdayNames maps rota.yml task section keys to Go weekdays.
var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// RotaConfig represents the top-level rota.yml configuration.
type RotaConfig struct {
	Version  string              `yaml:"version"`
	Board    string              `yaml:"board"`
	Redis    RedisConfig         `yaml:"redis,omitempty"`
	Weeks    int                 `yaml:"weeks,omitempty"`
	Tasks    map[string][]string `yaml:"tasks"`
	Identity IdentityConfig      `yaml:"identity,omitempty"`
	Offline  bool                `yaml:"offline,omitempty"`
}

// RedisConfig holds the connection settings for the shared store.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// IdentityConfig holds the file locations for the local identity state.
type IdentityConfig struct {
	IDFile   string `yaml:"id_file,omitempty"`
	NameFile string `yaml:"name_file,omitempty"`
}

// Validate performs strict validation on the configuration and applies
// defaults in place.
func (c *RotaConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Required: board name, Redis-key safe
	if c.Board == "" {
		return fmt.Errorf("board name is required")
	}
	if !boardNamePattern.MatchString(c.Board) {
		return fmt.Errorf("invalid board name %q (must match %s)", c.Board, boardNamePattern)
	}

	// Default: Redis address
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	// Default: 8 rolling weeks
	if c.Weeks == 0 {
		c.Weeks = 8
	}
	if c.Weeks < 1 {
		return fmt.Errorf("weeks must be >= 1, got %d", c.Weeks)
	}

	// Required: at least one task somewhere
	if err := c.validateTasks(); err != nil {
		return err
	}

	// Defaults: identity state under ~/.rota
	if c.Identity.IDFile == "" || c.Identity.NameFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot locate home directory for identity defaults: %w", err)
		}
		if c.Identity.IDFile == "" {
			c.Identity.IDFile = filepath.Join(home, ".rota", "id")
		}
		if c.Identity.NameFile == "" {
			c.Identity.NameFile = filepath.Join(home, ".rota", "name")
		}
	}

	return nil
}

func (c *RotaConfig) validateTasks() error {
	if len(c.Tasks) == 0 {
		return fmt.Errorf("no tasks defined")
	}

	total := 0
	for key, tasks := range c.Tasks {
		if _, ok := weekdayNames[strings.ToLower(key)]; !ok && strings.ToLower(key) != "default" {
			return fmt.Errorf("unknown task section %q (valid: monday..sunday, default)", key)
		}
		for _, task := range tasks {
			if strings.TrimSpace(task) == "" {
				return fmt.Errorf("task section %q contains an empty task name", key)
			}
		}
		total += len(tasks)
	}
	if total == 0 {
		return fmt.Errorf("no tasks defined")
	}
	return nil
}

// TaskSet converts the configured task sections into the calendar's TaskSet.
// Call only after Validate.
func (c *RotaConfig) TaskSet() calendar.TaskSet {
	ts := calendar.NewTaskSet(c.Tasks["default"])
	for key, tasks := range c.Tasks {
		if day, ok := weekdayNames[strings.ToLower(key)]; ok {
			ts.Set(day, tasks)
		}
	}
	return ts
}

// Load reads and validates rota.yml from the specified path.
func Load(path string) (*RotaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config RotaConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
