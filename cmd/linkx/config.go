package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	lxhttp "github.com/fwojciec/linkx/http"
	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor flags set a value.
const (
	defaultAddr        = "localhost:8080"
	defaultConcurrency = 4
)

// FileConfig is the optional YAML configuration file. Flags and
// environment variables override its values.
type FileConfig struct {
	APIURL      string `yaml:"apiUrl"`
	DB          string `yaml:"db"`
	Addr        string `yaml:"addr"`
	Concurrency int    `yaml:"concurrency"`
}

// LoadConfig reads the config file at path. A missing file is not an
// error and yields an empty config.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Vars returns the kong interpolation variables used as flag defaults.
func (c FileConfig) Vars() kong.Vars {
	apiURL := c.APIURL
	if apiURL == "" {
		apiURL = lxhttp.DefaultBaseURL
	}
	db := c.DB
	if db == "" {
		db = defaultDBPath()
	}
	addr := c.Addr
	if addr == "" {
		addr = defaultAddr
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return kong.Vars{
		"api_url":     apiURL,
		"db":          db,
		"addr":        addr,
		"concurrency": strconv.Itoa(concurrency),
	}
}

func defaultConfigPath() string {
	if path := os.Getenv("LINKX_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linkx", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "linkx.db"
	}
	return filepath.Join(home, ".linkx", "linkx.db")
}
