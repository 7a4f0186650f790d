// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
)

const (
	// EnvConfigJSON is the environment variable holding a JSON config overlay.
	EnvConfigJSON = "CRAWLDESK_CONFIG_JSON"

	// DefaultHomeHref is the landing view of the dashboard.
	DefaultHomeHref = "/dashboard"

	// DefaultCheckAliveURI is the default liveness endpoint.
	DefaultCheckAliveURI = "/checkalive"

	// MainFile is the name of the configuration file inside the config directory.
	MainFile = "main.toml"

	defaultShutDownTime = 5
	defaultLanguage     = "en"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(filepath.Join(path, MainFile), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode json config from "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the daemon can not start without and
// fills in defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.CheckAliveURI == "" {
		c.Webserver.CheckAliveURI = DefaultCheckAliveURI
	}

	return validateNavigation(&c.Navigation)
}

func validateNavigation(n *Navigation) error {
	if n.HomeHref == "" {
		n.HomeHref = DefaultHomeHref
	}

	if !strings.HasPrefix(n.HomeHref, "/") {
		return errors.Wrap(ErrHomeHrefNotAbsolute, n.HomeHref)
	}

	if n.HomeLabel == "" {
		n.HomeLabel = breadcrumb.DefaultHomeLabel
	}

	if n.Fallback == "" {
		n.Fallback = breadcrumb.DefaultFallback
	}

	if len(n.Languages) == 0 {
		n.Languages = []string{defaultLanguage}
	}

	return nil
}
