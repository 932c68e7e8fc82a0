package main

import (
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// config is the optional mpdctl config file, looked up at
// mpdctl/config.yaml under the XDG config directories unless an explicit
// path is given. Flags and environment variables take precedence over it.
type config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	Timeout  string `yaml:"timeout"`
}

func loadConfig(path string) (*config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile("mpdctl/config.yaml")
		if err != nil {
			// No config file anywhere: defaults apply.
			return &config{}, nil
		}

		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// timeoutValue parses the config file's timeout, which is kept as a string
// so the file can say "5s" like the flag does.
func (c *config) timeoutValue() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse config timeout: %w", err)
	}

	return d, nil
}
